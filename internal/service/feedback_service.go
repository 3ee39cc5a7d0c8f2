package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/weallth/weallth-backend/internal/domain"
)

var ErrFeedbackMessageEmpty = errors.New("feedback message is required")

// FeedbackService appends to the single global feedback collection
type FeedbackService struct {
	feedbackRepo domain.FeedbackRepository
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo domain.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

// SaveFeedback stores one feedback record, attributed to user when a
// session exists and to the anonymous placeholder otherwise
func (s *FeedbackService) SaveFeedback(user *domain.User, message string, rating int) (*domain.Feedback, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrFeedbackMessageEmpty
	}

	feedback := &domain.Feedback{
		ID:        uuid.New().String(),
		UserID:    domain.AnonymousUserID,
		Message:   message,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
	if user != nil {
		feedback.UserID = user.ID
		feedback.Email = user.Email
	}

	if err := s.feedbackRepo.Append(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
