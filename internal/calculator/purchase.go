package calculator

import (
	"fmt"
	"math"
	"math/big"
)

// LineItem is one row of a cost breakdown, rendered directly by clients
type LineItem struct {
	Label       string  `json:"label"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// PurchaseCostInput describes a property purchase
type PurchaseCostInput struct {
	PropertyPrice       float64 `json:"property_price"`
	IsFirstHome         bool    `json:"is_first_home"`
	IsNewImmigrant      bool    `json:"is_new_immigrant"`
	IncludeAgentFees    bool    `json:"include_agent_fees"`
	IncludeLawyerFees   bool    `json:"include_lawyer_fees"`
	IncludeMortgageFees bool    `json:"include_mortgage_fees"`
	MortgageAmount      float64 `json:"mortgage_amount"`
	RenovationBudget    float64 `json:"renovation_budget"`
}

// PurchaseCostResult is the itemized cost of a purchase
type PurchaseCostResult struct {
	PropertyPrice        float64    `json:"property_price"`
	PurchaseTax          float64    `json:"purchase_tax"`
	PurchaseTaxRate      string     `json:"purchase_tax_rate"`
	LawyerFees           float64    `json:"lawyer_fees"`
	AgentFees            float64    `json:"agent_fees"`
	MortgageFees         float64    `json:"mortgage_fees"`
	AppraisalFees        float64    `json:"appraisal_fees"`
	RegistrationFees     float64    `json:"registration_fees"`
	MovingCosts          float64    `json:"moving_costs"`
	RenovationBudget     float64    `json:"renovation_budget"`
	TotalAdditionalCosts float64    `json:"total_additional_costs"`
	TotalCost            float64    `json:"total_cost"`
	Breakdown            []LineItem `json:"breakdown"`
}

// ComputePurchaseTax returns the Mas Rechisha due on price and the effective
// rate over the full price, formatted for display.
//
// New immigrants deduct the exemption and are taxed on the remainder with the
// first-home table whatever isFirstHome says.
func (e *Engine) ComputePurchaseTax(price float64, isFirstHome, isNewImmigrant bool) (float64, string) {
	if isNewImmigrant {
		taxable := price - e.policy.ImmigrantExemption
		if taxable <= 0 {
			return 0, "0%"
		}
		tax := ComputeBracketTax(taxable, e.policy.FirstHomeBrackets)
		return tax, effectiveRate(tax, price)
	}

	brackets := e.policy.AdditionalPropertyBrackets
	if isFirstHome {
		brackets = e.policy.FirstHomeBrackets
	}
	tax := ComputeBracketTax(price, brackets)
	return tax, effectiveRate(tax, price)
}

func effectiveRate(tax, price float64) string {
	if price == 0 {
		return "0%"
	}
	rate := tax / price * 100
	if rate == 0 {
		rate = 0 // drop the sign of -0
	}
	return formatFixed2(rate) + "%"
}

// formatFixed2 renders v with two decimals, rounding the exact binary value
// half away from zero. fmt rounds exact ties to even instead.
func formatFixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	r := new(big.Rat).SetFloat64(v)
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	cents := new(big.Int).Quo(r.Num(), r.Denom()).String()
	for len(cents) < 3 {
		cents = "0" + cents
	}
	return sign + cents[:len(cents)-2] + "." + cents[len(cents)-2:]
}

// CalculatePurchaseCosts itemizes tax and every ancillary fee of a purchase
func (e *Engine) CalculatePurchaseCosts(in PurchaseCostInput) PurchaseCostResult {
	p := e.policy
	price := in.PropertyPrice

	tax, taxRate := e.ComputePurchaseTax(price, in.IsFirstHome, in.IsNewImmigrant)

	var lawyerFees, agentFees, mortgageFees, appraisalFees float64
	if in.IncludeLawyerFees {
		lawyerFees = roundHalfUp(price * p.LawyerFeeRate * p.VATMultiplier)
	}
	if in.IncludeAgentFees {
		agentFees = roundHalfUp(price * p.AgentFeeRate * p.VATMultiplier)
	}
	hasMortgage := in.MortgageAmount > 0
	if in.IncludeMortgageFees && hasMortgage {
		mortgageFees = roundHalfUp(in.MortgageAmount * p.MortgageFeeRate)
	}
	if hasMortgage {
		appraisalFees = p.AppraisalFee
	}
	registrationFees := roundHalfUp(price * p.RegistrationFeeRate)
	movingCosts := p.MovingCost

	totalAdditional := tax + lawyerFees + agentFees + mortgageFees + appraisalFees +
		registrationFees + movingCosts + in.RenovationBudget

	breakdown := []LineItem{
		{Label: "Property Price", Amount: price, Description: "The base purchase price of the property"},
		{Label: "Purchase Tax (Mas Rechisha)", Amount: tax, Description: fmt.Sprintf("Israeli property purchase tax at %s effective rate", taxRate)},
		{Label: "Lawyer Fees", Amount: lawyerFees, Description: "Legal representation for the transaction (0.5% + VAT)"},
		{Label: "Agent Commission", Amount: agentFees, Description: "Real estate agent fees (2% + VAT)"},
	}
	// appraisal rides along with the mortgage line even when mortgage fees are off
	if hasMortgage {
		breakdown = append(breakdown,
			LineItem{Label: "Mortgage Fees", Amount: mortgageFees, Description: "Bank mortgage origination fees"},
			LineItem{Label: "Property Appraisal", Amount: appraisalFees, Description: "Shomah (valuation) required by the bank"},
		)
	}
	breakdown = append(breakdown,
		LineItem{Label: "Tabu Registration", Amount: registrationFees, Description: "Land registry (Tabu) registration fees"},
		LineItem{Label: "Moving Costs", Amount: movingCosts, Description: "Estimated moving and setup costs"},
	)
	if in.RenovationBudget > 0 {
		breakdown = append(breakdown,
			LineItem{Label: "Renovation Budget", Amount: in.RenovationBudget, Description: "Your allocated budget for renovations"},
		)
	}

	return PurchaseCostResult{
		PropertyPrice:        price,
		PurchaseTax:          tax,
		PurchaseTaxRate:      taxRate,
		LawyerFees:           lawyerFees,
		AgentFees:            agentFees,
		MortgageFees:         mortgageFees,
		AppraisalFees:        appraisalFees,
		RegistrationFees:     registrationFees,
		MovingCosts:          movingCosts,
		RenovationBudget:     in.RenovationBudget,
		TotalAdditionalCosts: totalAdditional,
		TotalCost:            price + totalAdditional,
		Breakdown:            breakdown,
	}
}
