// Package catches holds the catch record as exchanged with the remote catch
// service, together with the coercions the entry forms apply before sending it.
package catches

import (
	"strconv"
	"strings"

	"github.com/agentstation/catchlog/pkg/errors"
)

// Catch is one recorded fish capture. Field names on the wire are the remote
// service's; ID is assigned remotely and empty until the record is created.
type Catch struct {
	ID         string   `json:"_id,omitempty" yaml:"_id,omitempty"`
	Species    string   `json:"espece" yaml:"espece"`
	LengthCm   float64  `json:"tailleCm" yaml:"tailleCm"`
	WeightKg   float64  `json:"poidsKg" yaml:"poidsKg"`
	CapturedAt string   `json:"dateCapture" yaml:"dateCapture"`
	Released   bool     `json:"remisALeau" yaml:"remisALeau"`
	Technique  string   `json:"technique" yaml:"technique"`
	Location   string   `json:"lieu" yaml:"lieu"`
	Weather    string   `json:"conditionsMeteo" yaml:"conditionsMeteo"`
	WaterTempC float64  `json:"temperatureEau" yaml:"temperatureEau"`
	Notes      []string `json:"notes" yaml:"notes"`
}

// Validate checks the invariants the client can enforce before a round trip.
func (c *Catch) Validate() error {
	if strings.TrimSpace(c.Species) == "" {
		return errors.NewValidationError("espece", c.Species, "species is required")
	}
	if c.LengthCm < 0 {
		return errors.NewValidationError("tailleCm", c.LengthCm, "must not be negative")
	}
	if c.WeightKg < 0 {
		return errors.NewValidationError("poidsKg", c.WeightKg, "must not be negative")
	}
	return nil
}

// ParseDecimal converts a form value to a number. An empty value is zero.
func ParseDecimal(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, errors.NewValidationError(field, s, "not a number")
	}
	return v, nil
}

// ParseDecimalOrZero is ParseDecimal with unparsable input coerced to zero.
func ParseDecimalOrZero(s string) float64 {
	v, err := ParseDecimal("", s)
	if err != nil {
		return 0
	}
	return v
}

// FormatDecimal renders a number for a form field or a card, without
// trailing zeros.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
