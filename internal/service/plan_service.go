package service

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/weallth/weallth-backend/internal/domain"
)

// PlanService derives funding plans from a goal's financial parameters.
// It holds no state: the same inputs always yield the same plan.
type PlanService struct{}

// NewPlanService creates a new PlanService
func NewPlanService() *PlanService {
	return &PlanService{}
}

// ComputePlan turns (targetAmount, timelineMonths, currentInvestment) into
// a funding plan under two models: a straight-line split of the remaining
// gap, and a level monthly contribution that closes the gap when compounded
// monthly at the fixed assumed rate. Monetary results are rounded to whole
// currency units, half away from zero.
//
// A non-positive timeline is a domain error; it is never coerced into an
// infinite contribution.
func (s *PlanService) ComputePlan(targetAmount decimal.Decimal, timelineMonths int, currentInvestment decimal.Decimal) (*domain.GoalPlan, error) {
	if timelineMonths <= 0 {
		return nil, domain.ErrInvalidTimeline
	}

	remaining := targetAmount.Sub(currentInvestment)
	if remaining.IsNegative() {
		// Over-funded goals owe nothing further
		remaining = decimal.Zero
	}

	months := decimal.NewFromInt(int64(timelineMonths))
	linear := remaining.Div(months).Round(0)

	monthlyRate := domain.AnnualGrowthRate / 12
	annuityFactor := (math.Pow(1+monthlyRate, float64(timelineMonths)) - 1) / monthlyRate

	remainingF := remaining.InexactFloat64()
	sip := math.Round(remainingF / annuityFactor)

	// Forward simulation: what the existing balance plus the SIP stream is
	// worth at the deadline, not the amount required.
	growthFactor := math.Pow(1+domain.AnnualGrowthRate, float64(timelineMonths)/12)
	projected := math.Round(currentInvestment.InexactFloat64()*growthFactor + sip*annuityFactor)

	progress := decimal.Zero
	if targetAmount.IsPositive() {
		progress = currentInvestment.Div(targetAmount).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &domain.GoalPlan{
		RemainingAmount:     remaining,
		MonthlySavingLinear: linear,
		SIPAmount:           decimal.NewFromFloat(sip),
		ProjectedAmount:     decimal.NewFromFloat(projected),
		ProgressPercentage:  progress,
	}, nil
}
