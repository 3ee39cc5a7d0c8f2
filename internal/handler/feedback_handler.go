package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/middleware"
	"github.com/weallth/weallth-backend/internal/service"
)

// FeedbackHandler handles feedback submissions
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// FeedbackRequest represents the feedback request body
type FeedbackRequest struct {
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}

// FeedbackResponse represents stored feedback in API responses
type FeedbackResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Message   string `json:"message"`
	Rating    int    `json:"rating,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// SaveFeedback handles POST /api/v1/feedback. Works with or without a
// session; anonymous feedback is attributed to a placeholder user.
func (h *FeedbackHandler) SaveFeedback(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user := middleware.GetCurrentUser(c)
	feedback, err := h.feedbackService.SaveFeedback(user, req.Message, req.Rating)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackMessageEmpty) {
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "message", Message: "Message is required"}})
		}
		log.Error().Err(err).Msg("Failed to save feedback")
		return NewInternalError(c, "Failed to save feedback")
	}

	return c.JSON(http.StatusCreated, toFeedbackResponse(feedback))
}

func toFeedbackResponse(feedback *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        feedback.ID,
		UserID:    feedback.UserID,
		Message:   feedback.Message,
		Rating:    feedback.Rating,
		CreatedAt: feedback.CreatedAt.Format(time.RFC3339),
	}
}
