package store

import (
	"context"
	"sync"
	"time"

	"creditguard/internal/creditreport/models"
	"creditguard/pkg/platform/sentinel"
)

type cachedProfile struct {
	profile  models.CreditProfile
	storedAt time.Time
}

type profileKey struct {
	userID string
	bureau models.Bureau
}

// InMemoryStore keeps the latest profile per user and bureau with TTL expiration.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[profileKey]cachedProfile
	cacheTTL time.Duration
	now      func() time.Time
}

// NewInMemoryStore creates a new in-memory store with the specified TTL.
func NewInMemoryStore(cacheTTL time.Duration) *InMemoryStore {
	return &InMemoryStore{
		profiles: make(map[profileKey]cachedProfile),
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// Save stores a copy of profile, replacing any previous profile for the same
// user and bureau. A nil profile is a no-op.
func (s *InMemoryStore) Save(_ context.Context, userID string, profile *models.CreditProfile) error {
	if profile == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profileKey{userID, profile.Bureau}] = cachedProfile{profile: *profile, storedAt: s.now()}
	return nil
}

// FindLatest returns sentinel.ErrNotFound if nothing is stored for the user
// and bureau or the entry has expired.
func (s *InMemoryStore) FindLatest(_ context.Context, userID string, bureau models.Bureau) (*models.CreditProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cached, ok := s.profiles[profileKey{userID, bureau}]
	if !ok || s.expired(cached) {
		return nil, sentinel.ErrNotFound
	}
	profile := cached.profile
	return &profile, nil
}

// ListLatest returns the unexpired profiles of a user in bureau order.
func (s *InMemoryStore) ListLatest(_ context.Context, userID string) ([]models.CreditProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CreditProfile, 0, len(models.Bureaus))
	for _, b := range models.Bureaus {
		cached, ok := s.profiles[profileKey{userID, b}]
		if ok && !s.expired(cached) {
			out = append(out, cached.profile)
		}
	}
	return out, nil
}

func (s *InMemoryStore) expired(c cachedProfile) bool {
	return s.now().Sub(c.storedAt) >= s.cacheTTL
}
