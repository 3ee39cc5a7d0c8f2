package domain

// Strategy describes an investment vehicle in the static catalog. The
// catalog is descriptive only; no scoring or recommendation logic reads it.
type Strategy struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Risk           RiskTolerance `json:"risk"`
	ExpectedReturn string        `json:"expectedReturn"`
	LockIn         string        `json:"lockIn,omitempty"`
}

// Strategies is the static investment-strategy catalog
var Strategies = []Strategy{
	{
		ID:             "fd",
		Name:           "Fixed Deposit",
		Description:    "Bank deposit with a guaranteed rate for a fixed term. Capital is protected; returns rarely beat inflation.",
		Risk:           RiskLow,
		ExpectedReturn: "6-7% p.a.",
		LockIn:         "1-5 years",
	},
	{
		ID:             "debt-mf",
		Name:           "Debt Mutual Funds",
		Description:    "Funds invested in bonds and money-market instruments. Lower volatility than equity with modest returns.",
		Risk:           RiskLow,
		ExpectedReturn: "7-8% p.a.",
	},
	{
		ID:             "index",
		Name:           "Index Funds",
		Description:    "Passive funds tracking a broad market index. Diversified equity exposure at low cost.",
		Risk:           RiskModerate,
		ExpectedReturn: "10-12% p.a.",
	},
	{
		ID:             "hybrid",
		Name:           "Hybrid Funds",
		Description:    "A managed mix of equity and debt, rebalanced by the fund. Middle ground between growth and stability.",
		Risk:           RiskModerate,
		ExpectedReturn: "9-11% p.a.",
	},
	{
		ID:             "equity-mf",
		Name:           "Equity Mutual Funds",
		Description:    "Actively managed stock funds. Higher growth potential with meaningful drawdown risk.",
		Risk:           RiskHigh,
		ExpectedReturn: "12-15% p.a.",
	},
	{
		ID:             "stocks",
		Name:           "Direct Equity",
		Description:    "Individual stocks picked and held by the investor. Highest potential return, highest risk and effort.",
		Risk:           RiskHigh,
		ExpectedReturn: "market dependent",
	},
}
