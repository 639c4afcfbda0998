package calculator

import "math"

// MortgageInput describes a fixed-rate, fixed-term loan against a property
type MortgageInput struct {
	PropertyPrice      float64 `json:"property_price"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	InterestRate       float64 `json:"interest_rate"` // nominal annual, percent
	LoanTermYears      int     `json:"loan_term_years"`
}

// MortgageResult is the amortization summary. LTV is a percentage.
type MortgageResult struct {
	LoanAmount     float64 `json:"loan_amount"`
	DownPayment    float64 `json:"down_payment"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
	LTV            float64 `json:"ltv"`
}

// CalculateMortgage computes the level monthly payment of an amortizing loan.
// Money is rounded only in the result so the payment keeps full precision.
func CalculateMortgage(in MortgageInput) MortgageResult {
	downPayment := in.PropertyPrice * (in.DownPaymentPercent / 100)
	loanAmount := in.PropertyPrice - downPayment

	monthlyRate := in.InterestRate / 100 / 12
	n := float64(in.LoanTermYears * 12)

	// A rate too small to move 1+r off 1 is indistinguishable from zero
	var monthlyPayment float64
	growth := math.Pow(1+monthlyRate, n)
	if monthlyRate == 0 || growth == 1 {
		monthlyPayment = loanAmount / n
	} else {
		monthlyPayment = loanAmount * (monthlyRate * growth) / (growth - 1)
	}

	totalPayment := monthlyPayment * n

	return MortgageResult{
		LoanAmount:     roundHalfUp(loanAmount),
		DownPayment:    roundHalfUp(downPayment),
		MonthlyPayment: roundHalfUp(monthlyPayment),
		TotalPayment:   roundHalfUp(totalPayment),
		TotalInterest:  roundHalfUp(totalPayment - loanAmount),
		LTV:            100 - in.DownPaymentPercent,
	}
}
