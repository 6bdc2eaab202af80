package utils

// Unit conversion lives here and only here. The profile API speaks
// pounds/inches, the metabolic formulas want kilograms/centimeters.
const (
	KgPerLb = 0.453592
	CmPerIn = 2.54
)

func LbToKg(lb float64) float64 { return lb * KgPerLb }

func InToCm(in float64) float64 { return in * CmPerIn }
