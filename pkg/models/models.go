package models

import "time"

type BuildingType string

const (
	BuildingTypeResidential BuildingType = "residential"
	BuildingTypeCommercial  BuildingType = "commercial"
	BuildingTypeIndustrial  BuildingType = "industrial"
)

func (bt BuildingType) Valid() bool {
	switch bt {
	case BuildingTypeResidential, BuildingTypeCommercial, BuildingTypeIndustrial:
		return true
	}
	return false
}

type SourceType string

const (
	SourceTypeSolar   SourceType = "solar"
	SourceTypeGrid    SourceType = "grid"
	SourceTypeBattery SourceType = "battery"
)

func (st SourceType) Valid() bool {
	switch st {
	case SourceTypeSolar, SourceTypeGrid, SourceTypeBattery:
		return true
	}
	return false
}

type Building struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	Type      BuildingType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}

// BuildingCreate carries caller-supplied fields for a new building.
type BuildingCreate struct {
	Name    string
	Address string
	Type    BuildingType
}

type EnergyReading struct {
	ID             string     `json:"id"`
	BuildingID     string     `json:"building_id"`
	Timestamp      time.Time  `json:"timestamp"`
	ConsumptionKWH float64    `json:"consumption_kwh"`
	SourceType     SourceType `json:"source_type"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ReadingCreate carries caller-supplied fields for a new reading. Timestamp
// is the instant the reading represents, not the insertion time.
type ReadingCreate struct {
	Timestamp      time.Time
	ConsumptionKWH float64
	SourceType     SourceType
}

// ReadingQuery holds optional retrieval filters; nil means not applied.
type ReadingQuery struct {
	StartDate  *time.Time
	EndDate    *time.Time
	SourceType *SourceType
}
