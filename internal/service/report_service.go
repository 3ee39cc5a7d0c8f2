package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/weallth/weallth-backend/internal/domain"
)

// Recommendation is one suggested allocation row in a goal report
type Recommendation struct {
	Name   string
	Amount decimal.Decimal
	Risk   domain.RiskTolerance
}

// ReportService renders a goal and its funding plan as a plain-text
// document. Pure formatting, no feedback into the core.
type ReportService struct{}

// NewReportService creates a new ReportService
func NewReportService() *ReportService {
	return &ReportService{}
}

// BuildReport produces the downloadable report for a goal
func (s *ReportService) BuildReport(goal *domain.Goal, plan *domain.GoalPlan, recommendations []Recommendation) string {
	var b strings.Builder

	b.WriteString("WEALLTH GOAL REPORT\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	fmt.Fprintf(&b, "Goal:              %s\n", goal.Name)
	fmt.Fprintf(&b, "Status:            %s\n", goal.Status)
	fmt.Fprintf(&b, "Generated:         %s\n\n", time.Now().UTC().Format("2006-01-02"))

	b.WriteString("PLAN\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Target amount:     %s\n", goal.TargetAmount.StringFixed(2))
	fmt.Fprintf(&b, "Timeline:          %d months\n", goal.TimelineMonths)
	fmt.Fprintf(&b, "Already saved:     %s\n", goal.CurrentInvestment.StringFixed(2))
	fmt.Fprintf(&b, "Remaining:         %s\n", plan.RemainingAmount.StringFixed(2))
	fmt.Fprintf(&b, "Monthly saving:    %s\n", plan.SIPAmount.StringFixed(2))
	fmt.Fprintf(&b, "Projected value:   %s\n", plan.ProjectedAmount.StringFixed(2))
	fmt.Fprintf(&b, "Progress:          %s%%\n", plan.ProgressPercentage.StringFixed(2))

	if len(recommendations) > 0 {
		b.WriteString("\nSUGGESTED ALLOCATION\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, rec := range recommendations {
			fmt.Fprintf(&b, "%-24s %12s  %s risk\n", rec.Name, rec.Amount.StringFixed(2), rec.Risk)
		}
	}

	b.WriteString("\nAssumed annual growth rate: 12%\n")
	return b.String()
}
