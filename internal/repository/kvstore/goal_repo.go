package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/kv"
)

// GoalRepository implements domain.GoalRepository over a kv.Store
type GoalRepository struct {
	store kv.Store
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(store kv.Store) *GoalRepository {
	return &GoalRepository{store: store}
}

// Load returns the owner's goal collection in insertion order. A missing
// key yields an empty collection, not an error.
func (r *GoalRepository) Load(ownerID string) ([]*domain.Goal, error) {
	raw, ok, err := r.store.Get(goalsKey(ownerID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if !ok {
		return []*domain.Goal{}, nil
	}

	var goals []*domain.Goal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		return nil, fmt.Errorf("%w: corrupt goal collection: %v", domain.ErrStorageFault, err)
	}
	return goals, nil
}

// Save overwrites the owner's entire goal collection
func (r *GoalRepository) Save(ownerID string, goals []*domain.Goal) error {
	if goals == nil {
		goals = []*domain.Goal{}
	}
	raw, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if err := r.store.Set(goalsKey(ownerID), string(raw)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	return nil
}

// Ensure GoalRepository implements domain.GoalRepository
var _ domain.GoalRepository = (*GoalRepository)(nil)
