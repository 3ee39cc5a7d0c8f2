package domain

import "github.com/shopspring/decimal"

// AnnualGrowthRate is the fixed nominal annual return assumed by the
// compound funding model (12%).
const AnnualGrowthRate = 0.12

// GoalPlan is the funding plan derived from a goal's financial parameters.
// It is recomputed on demand and never persisted directly: the same inputs
// always produce the same plan.
type GoalPlan struct {
	RemainingAmount     decimal.Decimal `json:"remainingAmount"`
	MonthlySavingLinear decimal.Decimal `json:"monthlySavingLinear"`
	SIPAmount           decimal.Decimal `json:"sipAmount"`
	ProjectedAmount     decimal.Decimal `json:"projectedAmount"`
	ProgressPercentage  decimal.Decimal `json:"progressPercentage"`
}
