package calculator

import "fmt"

// RentalCostInput describes a lease
type RentalCostInput struct {
	MonthlyRent       float64 `json:"monthly_rent"`
	LeasePeriodMonths int     `json:"lease_period_months"`
	DepositMonths     int     `json:"deposit_months"`
	IncludeAgentFees  bool    `json:"include_agent_fees"`
}

// RentalCostResult holds move-in and lease-lifetime totals
type RentalCostResult struct {
	MonthlyRent    float64    `json:"monthly_rent"`
	YearlyRent     float64    `json:"yearly_rent"`
	TotalLeaseCost float64    `json:"total_lease_cost"`
	Deposit        float64    `json:"deposit"`
	AgentFees      float64    `json:"agent_fees"`
	InitialCosts   float64    `json:"initial_costs"`
	Breakdown      []LineItem `json:"breakdown"`
}

// CalculateRentalCosts splits a lease into what is due at signing and what it
// costs over its term. The agent takes one month's rent plus VAT.
func (e *Engine) CalculateRentalCosts(in RentalCostInput) RentalCostResult {
	rent := in.MonthlyRent
	deposit := rent * float64(in.DepositMonths)

	var agentFees float64
	if in.IncludeAgentFees {
		agentFees = roundHalfUp(rent * e.policy.VATMultiplier)
	}

	return RentalCostResult{
		MonthlyRent:    rent,
		YearlyRent:     rent * 12,
		TotalLeaseCost: rent * float64(in.LeasePeriodMonths),
		Deposit:        deposit,
		AgentFees:      agentFees,
		InitialCosts:   rent + deposit + agentFees,
		Breakdown: []LineItem{
			{Label: "First Month Rent", Amount: rent, Description: "First month rent due at signing"},
			{Label: "Security Deposit", Amount: deposit, Description: fmt.Sprintf("%d months deposit (refundable)", in.DepositMonths)},
			{Label: "Agent Fees", Amount: agentFees, Description: "One month rent + VAT (if applicable)"},
		},
	}
}
