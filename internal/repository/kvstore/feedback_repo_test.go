package kvstore

import (
	"errors"
	"testing"
	"time"

	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/kv"
)

func TestFeedbackRepositoryAppend(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewFeedbackRepository(store)

	first := &domain.Feedback{
		ID:        "f-1",
		UserID:    "user-1",
		Message:   "Great tool",
		Rating:    5,
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	second := &domain.Feedback{
		ID:      "f-2",
		UserID:  domain.AnonymousUserID,
		Message: "Needs dark mode",
	}

	if err := repo.Append(first); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := repo.Append(second); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, ok, _ := store.Get("weallth_feedback"); !ok {
		t.Error("expected collection under weallth_feedback")
	}

	items, err := repo.List()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	// Append preserves insertion order
	if items[0].ID != "f-1" || items[1].ID != "f-2" {
		t.Errorf("expected order f-1,f-2, got %s,%s", items[0].ID, items[1].ID)
	}
}

func TestFeedbackRepositoryEmpty(t *testing.T) {
	repo := NewFeedbackRepository(kv.NewMemoryStore())

	items, err := repo.List()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %d", len(items))
	}
}

func TestFeedbackRepositoryCorruptCollection(t *testing.T) {
	store := kv.NewMemoryStore()
	store.Set("weallth_feedback", "oops")
	repo := NewFeedbackRepository(store)

	if _, err := repo.List(); !errors.Is(err, domain.ErrStorageFault) {
		t.Errorf("expected ErrStorageFault, got %v", err)
	}
	if err := repo.Append(&domain.Feedback{ID: "f-1", Message: "m"}); !errors.Is(err, domain.ErrStorageFault) {
		t.Errorf("expected ErrStorageFault on append over corrupt data, got %v", err)
	}
}
