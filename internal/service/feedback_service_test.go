package service

import (
	"errors"
	"testing"

	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/testutil"
)

func TestSaveFeedback(t *testing.T) {
	repo := testutil.NewMockFeedbackRepository()
	svc := NewFeedbackService(repo)

	user := &domain.User{ID: "user-1", Email: "asha@example.com"}
	feedback, err := svc.SaveFeedback(user, "  Love the planner  ", 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if feedback.UserID != "user-1" {
		t.Errorf("expected attribution to user-1, got %s", feedback.UserID)
	}
	if feedback.Email != "asha@example.com" {
		t.Errorf("expected email carried over, got %s", feedback.Email)
	}
	if feedback.Message != "Love the planner" {
		t.Errorf("expected trimmed message, got %q", feedback.Message)
	}
	if feedback.Rating != 5 {
		t.Errorf("expected rating 5, got %d", feedback.Rating)
	}
	if len(repo.Items) != 1 {
		t.Errorf("expected one stored record, got %d", len(repo.Items))
	}
}

func TestSaveFeedbackAnonymous(t *testing.T) {
	repo := testutil.NewMockFeedbackRepository()
	svc := NewFeedbackService(repo)

	feedback, err := svc.SaveFeedback(nil, "Works without an account too", 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if feedback.UserID != domain.AnonymousUserID {
		t.Errorf("expected anonymous attribution, got %s", feedback.UserID)
	}
	if feedback.Email != "" {
		t.Errorf("expected no email, got %s", feedback.Email)
	}
}

func TestSaveFeedbackEmptyMessage(t *testing.T) {
	svc := NewFeedbackService(testutil.NewMockFeedbackRepository())

	if _, err := svc.SaveFeedback(nil, "   ", 3); !errors.Is(err, ErrFeedbackMessageEmpty) {
		t.Errorf("expected ErrFeedbackMessageEmpty, got %v", err)
	}
}

func TestSaveFeedbackStorageFault(t *testing.T) {
	repo := testutil.NewMockFeedbackRepository()
	repo.AppendErr = domain.ErrStorageFault
	svc := NewFeedbackService(repo)

	if _, err := svc.SaveFeedback(nil, "message", 1); !errors.Is(err, domain.ErrStorageFault) {
		t.Errorf("expected ErrStorageFault, got %v", err)
	}
}
