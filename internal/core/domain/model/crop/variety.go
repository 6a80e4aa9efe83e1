package crop

import (
	"fmt"
	"strings"

	"harvesthub/internal/pkg/errs"
)

// Variety classifies a listed crop.
type Variety int

const (
	// UnknownVariety catches uninitialized values.
	UnknownVariety Variety = iota
	Wheat
	Rice
	Maize
	Cotton
	Sugarcane
	Barley
	Pulses
	Vegetables
	Fruits
	Other
)

func getVarietyStrings() map[Variety]string {
	return map[Variety]string{
		UnknownVariety: "Unknown",
		Wheat:          "Wheat",
		Rice:           "Rice",
		Maize:          "Maize",
		Cotton:         "Cotton",
		Sugarcane:      "Sugarcane",
		Barley:         "Barley",
		Pulses:         "Pulses",
		Vegetables:     "Vegetables",
		Fruits:         "Fruits",
		Other:          "Other",
	}
}

// ParseVariety resolves a variety by name, ignoring case.
func ParseVariety(s string) (Variety, error) {
	for v, name := range getVarietyStrings() {
		if v != UnknownVariety && strings.EqualFold(name, strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return UnknownVariety, errs.NewValueIsInvalidErrorWithCause("variety", fmt.Errorf("%q is not a known variety", s))
}

// Validate rejects UnknownVariety and values outside the enumeration.
func (v Variety) Validate() error {
	if v <= UnknownVariety || v > Other {
		return errs.NewValueIsInvalidErrorWithCause("variety", fmt.Errorf("%d is not a valid variety", v))
	}
	return nil
}

func (v Variety) String() string {
	if s, ok := getVarietyStrings()[v]; ok {
		return s
	}
	return "Unknown"
}
