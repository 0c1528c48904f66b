package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"energydata.io/building-energy-service/pkg/models"
)

var (
	ErrBuildingNotFound = errors.New("building not found")
	ErrDuplicateReading = errors.New("reading already exists")
)

// Store is the in-memory storage engine. It owns all entity state: the
// building map, each building's readings in insertion order, and the set of
// composite keys used for duplicate detection. A single coarse lock guards
// every operation.
type Store struct {
	mu        sync.RWMutex
	buildings map[string]*models.Building
	readings  map[string][]models.EnergyReading
	seenKeys  map[string]struct{}
}

func New() *Store {
	return &Store{
		buildings: make(map[string]*models.Building),
		readings:  make(map[string][]models.EnergyReading),
		seenKeys:  make(map[string]struct{}),
	}
}

func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// dedupKey canonicalizes the timestamp to UTC RFC3339Nano before keying, so
// two spellings of the same instant (e.g. with and without trailing zero
// fraction) count as the same reading.
func dedupKey(buildingID string, timestamp time.Time, sourceType models.SourceType) string {
	return fmt.Sprintf("%s|%s|%s", buildingID, timestamp.UTC().Format(time.RFC3339Nano), sourceType)
}

// CreateBuilding always succeeds; enum validity is the caller's problem.
func (s *Store) CreateBuilding(input *models.BuildingCreate) *models.Building {
	s.mu.Lock()
	defer s.mu.Unlock()

	building := &models.Building{
		ID:        newID("b"),
		Name:      input.Name,
		Address:   input.Address,
		Type:      input.Type,
		CreatedAt: time.Now().UTC(),
	}

	s.buildings[building.ID] = building
	s.readings[building.ID] = []models.EnergyReading{}

	return building
}

func (s *Store) GetBuilding(buildingID string) (*models.Building, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	building, ok := s.buildings[buildingID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBuildingNotFound, buildingID)
	}
	return building, nil
}

// AddReading is atomic: on any error no state changes.
func (s *Store) AddReading(buildingID string, input *models.ReadingCreate) (*models.EnergyReading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buildings[buildingID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrBuildingNotFound, buildingID)
	}

	key := dedupKey(buildingID, input.Timestamp, input.SourceType)
	if _, seen := s.seenKeys[key]; seen {
		return nil, ErrDuplicateReading
	}

	reading := models.EnergyReading{
		ID:             newID("r"),
		BuildingID:     buildingID,
		Timestamp:      input.Timestamp,
		ConsumptionKWH: input.ConsumptionKWH,
		SourceType:     input.SourceType,
		CreatedAt:      time.Now().UTC(),
	}

	s.readings[buildingID] = append(s.readings[buildingID], reading)
	s.seenKeys[key] = struct{}{}

	return &reading, nil
}

// GetReadings applies the query filters conjunctively (both date bounds
// inclusive, source type exact) and returns readings newest first. Readings
// with equal timestamps keep their insertion order.
func (s *Store) GetReadings(buildingID string, query *models.ReadingQuery) ([]models.EnergyReading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.buildings[buildingID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrBuildingNotFound, buildingID)
	}

	filtered := []models.EnergyReading{}
	for _, reading := range s.readings[buildingID] {
		if query != nil {
			if query.StartDate != nil && reading.Timestamp.Before(*query.StartDate) {
				continue
			}
			if query.EndDate != nil && reading.Timestamp.After(*query.EndDate) {
				continue
			}
			if query.SourceType != nil && reading.SourceType != *query.SourceType {
				continue
			}
		}
		filtered = append(filtered, reading)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})

	return filtered, nil
}
