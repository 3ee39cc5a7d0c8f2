package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/weallth/weallth-backend/internal/domain"
)

// GoalService handles per-user goal CRUD on top of the whole-collection
// repository. Every operation takes the owner explicitly; there is no
// ambient current-user lookup. Goal tracking is not safety critical, so
// read paths degrade to empty results on storage faults instead of failing.
type GoalService struct {
	goalRepo    domain.GoalRepository
	planService *PlanService
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo domain.GoalRepository, planService *PlanService) *GoalService {
	return &GoalService{
		goalRepo:    goalRepo,
		planService: planService,
	}
}

// CreateGoalInput contains input for creating a goal
type CreateGoalInput struct {
	Name              string
	TargetAmount      decimal.Decimal
	TimelineMonths    int
	CurrentInvestment decimal.Decimal
}

// CreateGoal creates a goal for the owner, computing its monthly saving
// from the compound funding model
func (s *GoalService) CreateGoal(ownerID string, input CreateGoalInput) (*domain.Goal, error) {
	if ownerID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	now := time.Now().UTC()
	goal := &domain.Goal{
		ID:                uuid.New().String(),
		UserID:            ownerID,
		Name:              strings.TrimSpace(input.Name),
		TargetAmount:      input.TargetAmount,
		TimelineMonths:    input.TimelineMonths,
		CurrentInvestment: input.CurrentInvestment,
		Status:            domain.GoalStatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.planService.ComputePlan(goal.TargetAmount, goal.TimelineMonths, goal.CurrentInvestment)
	if err != nil {
		return nil, err
	}
	goal.MonthlySaving = plan.SIPAmount

	goals, err := s.goalRepo.Load(ownerID)
	if err != nil {
		return nil, err
	}
	goals = append(goals, goal)
	if err := s.goalRepo.Save(ownerID, goals); err != nil {
		return nil, err
	}

	return goal, nil
}

// ListGoals returns the owner's goals in insertion order. It never fails:
// a missing owner or a storage fault yields an empty list.
func (s *GoalService) ListGoals(ownerID string) []*domain.Goal {
	if ownerID == "" {
		return []*domain.Goal{}
	}
	goals, err := s.goalRepo.Load(ownerID)
	if err != nil {
		log.Warn().Err(err).Str("owner_id", ownerID).Msg("Failed to load goals, returning empty list")
		return []*domain.Goal{}
	}
	return goals
}

// GetGoal retrieves one goal by id within the owner's collection only
func (s *GoalService) GetGoal(ownerID, goalID string) (*domain.Goal, error) {
	if ownerID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	goals, err := s.goalRepo.Load(ownerID)
	if err != nil {
		return nil, err
	}
	for _, goal := range goals {
		if goal.ID == goalID {
			return goal, nil
		}
	}
	return nil, domain.ErrGoalNotFound
}

// UpdateGoalInput contains the fields an update may set; nil fields are
// left untouched (shallow merge)
type UpdateGoalInput struct {
	Name              *string
	TargetAmount      *decimal.Decimal
	TimelineMonths    *int
	CurrentInvestment *decimal.Decimal
	Status            *domain.GoalStatus
}

// UpdateGoal shallow-merges the provided fields over the owner's goal,
// recomputes the monthly saving when a financial field changed, and
// refreshes updatedAt. A goal belonging to another owner is not found.
func (s *GoalService) UpdateGoal(ownerID, goalID string, input UpdateGoalInput) (*domain.Goal, error) {
	if ownerID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	goals, err := s.goalRepo.Load(ownerID)
	if err != nil {
		return nil, err
	}

	var goal *domain.Goal
	for _, g := range goals {
		if g.ID == goalID {
			goal = g
			break
		}
	}
	if goal == nil {
		return nil, domain.ErrGoalNotFound
	}

	if input.Name != nil {
		goal.Name = strings.TrimSpace(*input.Name)
	}
	financialChange := false
	if input.TargetAmount != nil {
		goal.TargetAmount = *input.TargetAmount
		financialChange = true
	}
	if input.TimelineMonths != nil {
		goal.TimelineMonths = *input.TimelineMonths
		financialChange = true
	}
	if input.CurrentInvestment != nil {
		goal.CurrentInvestment = *input.CurrentInvestment
		financialChange = true
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		goal.Status = *input.Status
	}

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if financialChange {
		plan, err := s.planService.ComputePlan(goal.TargetAmount, goal.TimelineMonths, goal.CurrentInvestment)
		if err != nil {
			return nil, err
		}
		goal.MonthlySaving = plan.SIPAmount
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := s.goalRepo.Save(ownerID, goals); err != nil {
		return nil, err
	}
	return goal, nil
}

// DeleteGoal removes the owner's goal if present. Deleting a goal that does
// not exist is a benign no-op that still reports success; only a storage
// fault or a missing session reports failure.
func (s *GoalService) DeleteGoal(ownerID, goalID string) bool {
	if ownerID == "" {
		return false
	}

	goals, err := s.goalRepo.Load(ownerID)
	if err != nil {
		log.Warn().Err(err).Str("owner_id", ownerID).Msg("Failed to load goals for delete")
		return false
	}

	kept := goals[:0]
	found := false
	for _, goal := range goals {
		if goal.ID == goalID {
			found = true
			continue
		}
		kept = append(kept, goal)
	}
	if !found {
		return true
	}

	if err := s.goalRepo.Save(ownerID, kept); err != nil {
		log.Warn().Err(err).Str("owner_id", ownerID).Str("goal_id", goalID).Msg("Failed to save goals after delete")
		return false
	}
	return true
}

// PlanFor recomputes the funding plan for an existing goal, for display
// refresh after edits
func (s *GoalService) PlanFor(goal *domain.Goal) (*domain.GoalPlan, error) {
	return s.planService.ComputePlan(goal.TargetAmount, goal.TimelineMonths, goal.CurrentInvestment)
}
