package domain

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
)

// CurrencyUSD is the only currency cost estimates are produced in.
const CurrencyUSD = "USD"

var validate = validator.New(validator.WithRequiredStructEnabled())

type Vehicle struct {
	Make  string `json:"make"  dynamodbav:"make"  validate:"required"`
	Model string `json:"model" dynamodbav:"model" validate:"required"`
	Color string `json:"color" dynamodbav:"color" validate:"required"`
}

type CostEstimate struct {
	Min      float64 `json:"min"      dynamodbav:"min"      validate:"gte=0,ltefield=Max"`
	Max      float64 `json:"max"      dynamodbav:"max"`
	Currency string  `json:"currency" dynamodbav:"currency" validate:"eq=USD"`
}

// Range renders the estimate in whole dollars, e.g. "$1,200 - $1,850".
func (c CostEstimate) Range() string {
	return dollars(c.Min) + " - " + dollars(c.Max)
}

func dollars(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// DamageAssessment is the structured result produced by the inference model for one image.
type DamageAssessment struct {
	Vehicle       Vehicle      `json:"carMetadata"         dynamodbav:"carMetadata"         validate:"required"`
	DamageSummary string       `json:"damageSummary"       dynamodbav:"damageSummary"       validate:"required"`
	CostEstimate  CostEstimate `json:"estimatedRepairCost" dynamodbav:"estimatedRepairCost" validate:"required"`
}

func (a *DamageAssessment) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid damage assessment: %w", err)
	}

	return nil
}
