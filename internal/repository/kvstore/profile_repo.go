package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/kv"
)

// ProfileRepository implements domain.ProfileRepository over a kv.Store
type ProfileRepository struct {
	store kv.Store
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(store kv.Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

// Get retrieves the owner's profile, or domain.ErrProfileNotFound when absent
func (r *ProfileRepository) Get(ownerID string) (*domain.UserProfile, error) {
	raw, ok, err := r.store.Get(profileKey(ownerID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if !ok {
		return nil, domain.ErrProfileNotFound
	}

	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("%w: corrupt profile record: %v", domain.ErrStorageFault, err)
	}
	return &profile, nil
}

// Save replaces the owner's profile record wholesale
func (r *ProfileRepository) Save(ownerID string, profile *domain.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if err := r.store.Set(profileKey(ownerID), string(raw)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	return nil
}

// Ensure ProfileRepository implements domain.ProfileRepository
var _ domain.ProfileRepository = (*ProfileRepository)(nil)
