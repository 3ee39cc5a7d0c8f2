package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProfileNotFound         = errors.New("profile not found")
	ErrInvalidRiskTolerance    = errors.New("invalid risk tolerance")
	ErrInvalidExperienceLevel  = errors.New("invalid investment experience")
	ErrProfileFullNameRequired = errors.New("full name is required")
)

// RiskTolerance is the user's self-described appetite for investment risk
type RiskTolerance string

const (
	RiskLow      RiskTolerance = "low"
	RiskModerate RiskTolerance = "moderate"
	RiskHigh     RiskTolerance = "high"
)

func (r RiskTolerance) IsValid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh:
		return true
	}
	return false
}

// ExperienceLevel is the user's self-described investment experience
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

func (e ExperienceLevel) IsValid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

// UserProfile is a financial self-description used to display the user's
// available monthly investment; the calculator does not consume it.
// Saves overwrite the whole record, there is no partial merge.
type UserProfile struct {
	FullName             string          `json:"fullName"`
	Email                string          `json:"email"`
	MonthlySalary        decimal.Decimal `json:"monthlySalary"`
	FixedExpenses        decimal.Decimal `json:"fixedExpenses"`
	VariableExpenses     decimal.Decimal `json:"variableExpenses"`
	RiskTolerance        RiskTolerance   `json:"riskTolerance"`
	InvestmentExperience ExperienceLevel `json:"investmentExperience"`
}

// AvailableMonthly returns salary minus fixed and variable expenses
func (p *UserProfile) AvailableMonthly() decimal.Decimal {
	return p.MonthlySalary.Sub(p.FixedExpenses).Sub(p.VariableExpenses)
}

func (p *UserProfile) Validate() error {
	if p.FullName == "" {
		return ErrProfileFullNameRequired
	}
	if p.RiskTolerance != "" && !p.RiskTolerance.IsValid() {
		return ErrInvalidRiskTolerance
	}
	if p.InvestmentExperience != "" && !p.InvestmentExperience.IsValid() {
		return ErrInvalidExperienceLevel
	}
	return nil
}

// ProfileRepository persists one profile per owner, overwritten wholesale
type ProfileRepository interface {
	Get(ownerID string) (*UserProfile, error)
	Save(ownerID string, profile *UserProfile) error
}
