package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/middleware"
	"github.com/weallth/weallth-backend/internal/service"
	"github.com/weallth/weallth-backend/internal/websocket"
)

// ProfileHandler handles user-profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
	publisher      websocket.EventPublisher
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService, publisher websocket.EventPublisher) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, publisher: publisher}
}

// SaveProfileRequest represents the save profile request body. The record
// is replaced wholesale; omitted fields are not carried over.
type SaveProfileRequest struct {
	FullName             string          `json:"fullName"`
	Email                string          `json:"email"`
	MonthlySalary        decimal.Decimal `json:"monthlySalary"`
	FixedExpenses        decimal.Decimal `json:"fixedExpenses"`
	VariableExpenses     decimal.Decimal `json:"variableExpenses"`
	RiskTolerance        string          `json:"riskTolerance"`
	InvestmentExperience string          `json:"investmentExperience"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	FullName             string `json:"fullName"`
	Email                string `json:"email"`
	MonthlySalary        string `json:"monthlySalary"`
	FixedExpenses        string `json:"fixedExpenses"`
	VariableExpenses     string `json:"variableExpenses"`
	AvailableMonthly     string `json:"availableMonthly"`
	RiskTolerance        string `json:"riskTolerance"`
	InvestmentExperience string `json:"investmentExperience"`
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Session required")
	}

	profile, err := h.profileService.GetProfile(ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Profile not found")
		}
		log.Error().Err(err).Str("owner_id", ownerID).Msg("Failed to get profile")
		return NewInternalError(c, "Failed to get profile")
	}

	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// SaveProfile handles PUT /api/v1/profile
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == "" {
		return NewUnauthorizedError(c, "Session required")
	}

	var req SaveProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	profile := &domain.UserProfile{
		FullName:             req.FullName,
		Email:                req.Email,
		MonthlySalary:        req.MonthlySalary,
		FixedExpenses:        req.FixedExpenses,
		VariableExpenses:     req.VariableExpenses,
		RiskTolerance:        domain.RiskTolerance(req.RiskTolerance),
		InvestmentExperience: domain.ExperienceLevel(req.InvestmentExperience),
	}

	if err := profile.Validate(); err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileFullNameRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "fullName", Message: "Full name is required"}})
		case errors.Is(err, domain.ErrInvalidRiskTolerance):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "riskTolerance", Message: "Risk tolerance must be low, moderate, or high"}})
		case errors.Is(err, domain.ErrInvalidExperienceLevel):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "investmentExperience", Message: "Experience must be beginner, intermediate, or advanced"}})
		}
		return NewValidationError(c, "Validation failed", nil)
	}

	if ok := h.profileService.SaveProfile(ownerID, profile); !ok {
		return NewInternalError(c, "Failed to save profile")
	}

	h.publisher.Publish(ownerID, websocket.ProfileUpdated(toProfileResponse(profile)))
	log.Info().Str("owner_id", ownerID).Msg("Profile saved")

	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(profile *domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		FullName:             profile.FullName,
		Email:                profile.Email,
		MonthlySalary:        profile.MonthlySalary.StringFixed(2),
		FixedExpenses:        profile.FixedExpenses.StringFixed(2),
		VariableExpenses:     profile.VariableExpenses.StringFixed(2),
		AvailableMonthly:     profile.AvailableMonthly().StringFixed(2),
		RiskTolerance:        string(profile.RiskTolerance),
		InvestmentExperience: string(profile.InvestmentExperience),
	}
}
