package energy

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-building rate limiters: building_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(buildingID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[buildingID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[buildingID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(buildingID string, buildingRate rate.Limit, buildingBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[buildingID] = rate.NewLimiter(buildingRate, buildingBurst)
}
