package calculator

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Unbounded marks the open upper end of the last bracket in a table
var Unbounded = math.Inf(1)

// TaxBracket is one marginal band of a progressive tax table.
// The band covers (previous UpperBound, UpperBound] and is taxed at Rate.
type TaxBracket struct {
	UpperBound float64 `json:"upper_bound"`
	Rate       float64 `json:"rate"`
}

// Policy holds the tax law and fee data the engine computes with.
// None of these numbers appear in the algorithms themselves.
type Policy struct {
	FirstHomeBrackets          []TaxBracket
	AdditionalPropertyBrackets []TaxBracket
	ImmigrantExemption         float64

	VATMultiplier       float64 // applied to lawyer and agent fees
	LawyerFeeRate       float64
	AgentFeeRate        float64
	MortgageFeeRate     float64
	RegistrationFeeRate float64
	AppraisalFee        float64
	MovingCost          float64
}

// DefaultPolicy returns the Mas Rechisha tables and fee rates in force for 2024
func DefaultPolicy() Policy {
	return Policy{
		FirstHomeBrackets: []TaxBracket{
			{UpperBound: 1978745, Rate: 0},
			{UpperBound: 2347040, Rate: 0.035},
			{UpperBound: 6055070, Rate: 0.05},
			{UpperBound: 20183560, Rate: 0.08},
			{UpperBound: Unbounded, Rate: 0.10},
		},
		AdditionalPropertyBrackets: []TaxBracket{
			{UpperBound: 6055070, Rate: 0.08},
			{UpperBound: 20183560, Rate: 0.10},
			{UpperBound: Unbounded, Rate: 0.10},
		},
		ImmigrantExemption:  1838840,
		VATMultiplier:       1.17,
		LawyerFeeRate:       0.005,
		AgentFeeRate:        0.02,
		MortgageFeeRate:     0.005,
		RegistrationFeeRate: 0.0025,
		AppraisalFee:        2500,
		MovingCost:          5000,
	}
}

// Validate checks that both bracket tables partition [0, ∞)
func (p Policy) Validate() error {
	if err := validateBrackets(p.FirstHomeBrackets); err != nil {
		return fmt.Errorf("first home brackets: %w", err)
	}
	if err := validateBrackets(p.AdditionalPropertyBrackets); err != nil {
		return fmt.Errorf("additional property brackets: %w", err)
	}
	if p.ImmigrantExemption < 0 {
		return errors.New("immigrant exemption must not be negative")
	}
	return nil
}

func validateBrackets(brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return errors.New("table is empty")
	}
	previous := 0.0
	for i, b := range brackets {
		if b.Rate < 0 || b.Rate > 1 {
			return fmt.Errorf("bracket %d: rate %v outside [0,1]", i, b.Rate)
		}
		if b.UpperBound <= previous {
			return fmt.Errorf("bracket %d: upper bound %v not above %v", i, b.UpperBound, previous)
		}
		previous = b.UpperBound
	}
	if !math.IsInf(previous, 1) {
		return errors.New("last bracket must be unbounded")
	}
	return nil
}

// policyFile is the YAML shape of a policy override. Absent keys keep their defaults.
type policyFile struct {
	FirstHomeBrackets          []bracketFile `yaml:"first_home_brackets"`
	AdditionalPropertyBrackets []bracketFile `yaml:"additional_property_brackets"`
	ImmigrantExemption         *float64      `yaml:"immigrant_exemption"`
	VATMultiplier              *float64      `yaml:"vat_multiplier"`
	LawyerFeeRate              *float64      `yaml:"lawyer_fee_rate"`
	AgentFeeRate               *float64      `yaml:"agent_fee_rate"`
	MortgageFeeRate            *float64      `yaml:"mortgage_fee_rate"`
	RegistrationFeeRate        *float64      `yaml:"registration_fee_rate"`
	AppraisalFee               *float64      `yaml:"appraisal_fee"`
	MovingCost                 *float64      `yaml:"moving_cost"`
}

// bracketFile leaves upper_bound out for the unbounded band
type bracketFile struct {
	UpperBound *float64 `yaml:"upper_bound"`
	Rate       float64  `yaml:"rate"`
}

// LoadPolicy reads a YAML policy file on top of DefaultPolicy.
// An empty path returns the defaults.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to read tax policy file: %w", err)
	}
	return ParsePolicy(data)
}

// ParsePolicy decodes YAML policy data on top of DefaultPolicy and validates the result
func ParsePolicy(data []byte) (Policy, error) {
	policy := DefaultPolicy()

	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Policy{}, fmt.Errorf("failed to parse tax policy: %w", err)
	}

	if len(file.FirstHomeBrackets) > 0 {
		policy.FirstHomeBrackets = toBrackets(file.FirstHomeBrackets)
	}
	if len(file.AdditionalPropertyBrackets) > 0 {
		policy.AdditionalPropertyBrackets = toBrackets(file.AdditionalPropertyBrackets)
	}
	overrideFloat(&policy.ImmigrantExemption, file.ImmigrantExemption)
	overrideFloat(&policy.VATMultiplier, file.VATMultiplier)
	overrideFloat(&policy.LawyerFeeRate, file.LawyerFeeRate)
	overrideFloat(&policy.AgentFeeRate, file.AgentFeeRate)
	overrideFloat(&policy.MortgageFeeRate, file.MortgageFeeRate)
	overrideFloat(&policy.RegistrationFeeRate, file.RegistrationFeeRate)
	overrideFloat(&policy.AppraisalFee, file.AppraisalFee)
	overrideFloat(&policy.MovingCost, file.MovingCost)

	if err := policy.Validate(); err != nil {
		return Policy{}, fmt.Errorf("invalid tax policy: %w", err)
	}
	return policy, nil
}

func toBrackets(in []bracketFile) []TaxBracket {
	out := make([]TaxBracket, len(in))
	for i, b := range in {
		out[i] = TaxBracket{UpperBound: Unbounded, Rate: b.Rate}
		if b.UpperBound != nil {
			out[i].UpperBound = *b.UpperBound
		}
	}
	return out
}

func overrideFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
