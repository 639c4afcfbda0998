package model

// PurchaseCalcRequest is the purchase calculator input as sent by clients.
// Nil fields take the calculator defaults.
type PurchaseCalcRequest struct {
	Price          *float64 `json:"price"`
	FirstHome      *bool    `json:"firstHome"`
	NewImmigrant   *bool    `json:"newImmigrant"`
	AgentFees      *bool    `json:"agentFees"`
	LawyerFees     *bool    `json:"lawyerFees"`
	MortgageFees   *bool    `json:"mortgageFees"`
	MortgageAmount *float64 `json:"mortgageAmount"`
	Renovation     *float64 `json:"renovation"`
}

// RentalCalcRequest is the rental calculator input as sent by clients
type RentalCalcRequest struct {
	MonthlyRent   *float64 `json:"monthlyRent"`
	LeaseMonths   *int     `json:"leaseMonths"`
	DepositMonths *int     `json:"depositMonths"`
	AgentFees     *bool    `json:"agentFees"`
}

// MortgageCalcRequest is the mortgage calculator input as sent by clients
type MortgageCalcRequest struct {
	Price              *float64 `json:"price"`
	DownPaymentPercent *float64 `json:"downPaymentPercent"`
	InterestRate       *float64 `json:"interestRate"`
	TermYears          *int     `json:"termYears"`
}
