// Package calculator estimates the costs of buying, renting and financing a
// property in Israel. Every function is a pure computation over its input;
// nothing here validates, fails or keeps state between calls.
package calculator

// Engine runs the calculators against one tax and fee policy
type Engine struct {
	policy Policy
}

// NewEngine creates an engine bound to policy
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the policy the engine computes with
func (e *Engine) Policy() Policy {
	return e.policy
}

// CalculateMortgage does not depend on the policy; it is exposed on the engine
// so callers can hold a single calculator handle.
func (e *Engine) CalculateMortgage(in MortgageInput) MortgageResult {
	return CalculateMortgage(in)
}

var defaultEngine = NewEngine(DefaultPolicy())

// ComputePurchaseTax uses the default policy
func ComputePurchaseTax(price float64, isFirstHome, isNewImmigrant bool) (float64, string) {
	return defaultEngine.ComputePurchaseTax(price, isFirstHome, isNewImmigrant)
}

// CalculatePurchaseCosts uses the default policy
func CalculatePurchaseCosts(in PurchaseCostInput) PurchaseCostResult {
	return defaultEngine.CalculatePurchaseCosts(in)
}

// CalculateRentalCosts uses the default policy
func CalculateRentalCosts(in RentalCostInput) RentalCostResult {
	return defaultEngine.CalculateRentalCosts(in)
}
