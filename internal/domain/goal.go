package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrGoalNotFound        = errors.New("goal not found")
	ErrGoalNameEmpty       = errors.New("goal name is required")
	ErrGoalNameTooLong     = errors.New("goal name must be 255 characters or less")
	ErrInvalidTargetAmount = errors.New("target amount must be positive")
	ErrInvalidTimeline     = errors.New("timeline must be a positive number of months")
	ErrInvalidAmount       = errors.New("amount is not a valid number")
)

// GoalStatus represents the lifecycle state of a goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// IsValid reports whether the status is one of the known values
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused:
		return true
	}
	return false
}

// Goal represents a savings target tracked over time.
// CurrentInvestment may exceed TargetAmount; over-funding simply yields
// more than 100% progress.
type Goal struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	Name              string          `json:"name"`
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	TimelineMonths    int             `json:"timelineMonths"`
	CurrentInvestment decimal.Decimal `json:"currentInvestment"`
	MonthlySaving     decimal.Decimal `json:"monthlySaving"`
	Status            GoalStatus      `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func (g *Goal) Validate() error {
	if g.Name == "" {
		return ErrGoalNameEmpty
	}
	if len(g.Name) > MaxGoalNameLength {
		return ErrGoalNameTooLong
	}
	if !g.TargetAmount.IsPositive() {
		return ErrInvalidTargetAmount
	}
	if g.TimelineMonths <= 0 {
		return ErrInvalidTimeline
	}
	return nil
}

// GoalRepository persists a user's goal collection as a whole.
// Load returns an empty slice when the owner has no goals yet.
type GoalRepository interface {
	Load(ownerID string) ([]*Goal, error)
	Save(ownerID string, goals []*Goal) error
}
