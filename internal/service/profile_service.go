package service

import (
	"github.com/rs/zerolog/log"
	"github.com/weallth/weallth-backend/internal/domain"
)

// ProfileService handles the per-user financial self-description
type ProfileService struct {
	profileRepo domain.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo domain.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile retrieves the owner's profile; domain.ErrProfileNotFound when
// none has been saved
func (s *ProfileService) GetProfile(ownerID string) (*domain.UserProfile, error) {
	if ownerID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return s.profileRepo.Get(ownerID)
}

// SaveProfile replaces the owner's profile wholesale. Fields missing from
// the new record are gone afterwards; nothing is carried over. The saved
// flag is false on validation failure, missing session, or storage fault.
func (s *ProfileService) SaveProfile(ownerID string, profile *domain.UserProfile) bool {
	if ownerID == "" {
		return false
	}
	if err := profile.Validate(); err != nil {
		log.Debug().Err(err).Str("owner_id", ownerID).Msg("Rejected invalid profile")
		return false
	}
	if err := s.profileRepo.Save(ownerID, profile); err != nil {
		log.Warn().Err(err).Str("owner_id", ownerID).Msg("Failed to save profile")
		return false
	}
	return true
}
