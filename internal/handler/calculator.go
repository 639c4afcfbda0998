package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"estate/internal/calculator"
	"estate/internal/model"

	"github.com/gin-gonic/gin"
)

// Calculator input defaults, applied when a value is missing or unparseable
const (
	defaultLeaseMonths        = 12
	defaultDepositMonths      = 2
	defaultDownPaymentPercent = 25.0
	defaultInterestRate       = 4.5
	defaultLoanTermYears      = 25
)

// CalculatorHandler exposes the cost calculators over HTTP.
// Numeric input never produces an error response; bad values take defaults.
type CalculatorHandler struct {
	engine *calculator.Engine
}

// NewCalculatorHandler creates a new calculator handler
func NewCalculatorHandler(engine *calculator.Engine) *CalculatorHandler {
	return &CalculatorHandler{engine: engine}
}

// Purchase handles GET and POST /api/v1/calculator/purchase
func (h *CalculatorHandler) Purchase(c *gin.Context) {
	var req model.PurchaseCalcRequest
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
	} else {
		req = model.PurchaseCalcRequest{
			Price:          queryFloat(c, "price"),
			FirstHome:      queryBool(c, "firstHome"),
			NewImmigrant:   queryBool(c, "newImmigrant"),
			AgentFees:      queryBool(c, "agentFees"),
			LawyerFees:     queryBool(c, "lawyerFees"),
			MortgageFees:   queryBool(c, "mortgageFees"),
			MortgageAmount: queryFloat(c, "mortgageAmount"),
			Renovation:     queryFloat(c, "renovation"),
		}
	}

	renderResult(c, h.engine.CalculatePurchaseCosts(purchaseInput(req)))
}

// Rental handles GET and POST /api/v1/calculator/rental
func (h *CalculatorHandler) Rental(c *gin.Context) {
	var req model.RentalCalcRequest
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
	} else {
		req = model.RentalCalcRequest{
			MonthlyRent:   queryFloat(c, "monthlyRent"),
			LeaseMonths:   queryInt(c, "leaseMonths"),
			DepositMonths: queryInt(c, "depositMonths"),
			AgentFees:     queryBool(c, "agentFees"),
		}
	}

	renderResult(c, h.engine.CalculateRentalCosts(rentalInput(req)))
}

// Mortgage handles GET and POST /api/v1/calculator/mortgage
func (h *CalculatorHandler) Mortgage(c *gin.Context) {
	var req model.MortgageCalcRequest
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
	} else {
		req = model.MortgageCalcRequest{
			Price:              queryFloat(c, "price"),
			DownPaymentPercent: queryFloat(c, "downPaymentPercent"),
			InterestRate:       queryFloat(c, "interestRate"),
			TermYears:          queryInt(c, "termYears"),
		}
	}

	renderResult(c, h.engine.CalculateMortgage(mortgageInput(req)))
}

// renderResult writes a calculation. Inputs large enough to overflow a field
// to ±Inf or NaN have no JSON form and get a 422 instead of an empty 200.
func renderResult(c *gin.Context, result any) {
	body, err := json.Marshal(result)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Inputs are too large to calculate"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Policy handles GET /api/v1/calculator/policy
func (h *CalculatorHandler) Policy(c *gin.Context) {
	p := h.engine.Policy()
	c.JSON(http.StatusOK, gin.H{
		"first_home_brackets":          p.FirstHomeBrackets,
		"additional_property_brackets": p.AdditionalPropertyBrackets,
		"immigrant_exemption":          p.ImmigrantExemption,
		"vat_multiplier":               p.VATMultiplier,
		"lawyer_fee_rate":              p.LawyerFeeRate,
		"agent_fee_rate":               p.AgentFeeRate,
		"mortgage_fee_rate":            p.MortgageFeeRate,
		"registration_fee_rate":        p.RegistrationFeeRate,
		"appraisal_fee":                p.AppraisalFee,
		"moving_cost":                  p.MovingCost,
	})
}

func purchaseInput(req model.PurchaseCalcRequest) calculator.PurchaseCostInput {
	mortgageAmount := floatOr(req.MortgageAmount, 0)
	return calculator.PurchaseCostInput{
		PropertyPrice:       floatOr(req.Price, 0),
		IsFirstHome:         boolOr(req.FirstHome, true),
		IsNewImmigrant:      boolOr(req.NewImmigrant, false),
		IncludeAgentFees:    boolOr(req.AgentFees, true),
		IncludeLawyerFees:   boolOr(req.LawyerFees, true),
		IncludeMortgageFees: boolOr(req.MortgageFees, mortgageAmount > 0),
		MortgageAmount:      mortgageAmount,
		RenovationBudget:    floatOr(req.Renovation, 0),
	}
}

func rentalInput(req model.RentalCalcRequest) calculator.RentalCostInput {
	return calculator.RentalCostInput{
		MonthlyRent:       floatOr(req.MonthlyRent, 0),
		LeasePeriodMonths: intOr(req.LeaseMonths, defaultLeaseMonths),
		DepositMonths:     intOr(req.DepositMonths, defaultDepositMonths),
		IncludeAgentFees:  boolOr(req.AgentFees, true),
	}
}

func mortgageInput(req model.MortgageCalcRequest) calculator.MortgageInput {
	term := intOr(req.TermYears, defaultLoanTermYears)
	if term <= 0 {
		// zero payments would divide by zero
		term = defaultLoanTermYears
	}
	return calculator.MortgageInput{
		PropertyPrice:      floatOr(req.Price, 0),
		DownPaymentPercent: floatOr(req.DownPaymentPercent, defaultDownPaymentPercent),
		InterestRate:       floatOr(req.InterestRate, defaultInterestRate),
		LoanTermYears:      term,
	}
}

// queryFloat parses a numeric query value; nil when missing or not a finite number
func queryFloat(c *gin.Context, key string) *float64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// queryInt parses an integer query value, truncating decimals like parseInt
func queryInt(c *gin.Context, key string) *int {
	f := queryFloat(c, key)
	if f == nil || math.Abs(*f) > math.MaxInt32 {
		return nil
	}
	n := int(*f)
	return &n
}

func queryBool(c *gin.Context, key string) *bool {
	var b bool
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "true", "1", "on", "yes":
		b = true
	case "false", "0", "off", "no":
		b = false
	default:
		return nil
	}
	return &b
}

func floatOr(v *float64, def float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
