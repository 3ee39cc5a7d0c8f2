package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/kv"
)

// FeedbackRepository implements domain.FeedbackRepository over a kv.Store.
// The feedback collection is global, not namespaced per owner.
type FeedbackRepository struct {
	store kv.Store
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(store kv.Store) *FeedbackRepository {
	return &FeedbackRepository{store: store}
}

// List returns all stored feedback in insertion order
func (r *FeedbackRepository) List() ([]*domain.Feedback, error) {
	raw, ok, err := r.store.Get(keyFeedback)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if !ok {
		return []*domain.Feedback{}, nil
	}

	var items []*domain.Feedback
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: corrupt feedback collection: %v", domain.ErrStorageFault, err)
	}
	return items, nil
}

// Append adds one record to the global feedback collection
func (r *FeedbackRepository) Append(feedback *domain.Feedback) error {
	items, err := r.List()
	if err != nil {
		return err
	}
	items = append(items, feedback)

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	if err := r.store.Set(keyFeedback, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
	return nil
}

// Ensure FeedbackRepository implements domain.FeedbackRepository
var _ domain.FeedbackRepository = (*FeedbackRepository)(nil)
