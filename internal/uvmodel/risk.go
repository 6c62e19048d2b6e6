package uvmodel

import "encoding/json"

// RiskLevel is the five-band classification of a UV index.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskModerate
	RiskHigh
	RiskVeryHigh
	RiskExtreme
)

// UV index thresholds between the bands, in ascending order.
const (
	thresholdModerate = 3
	thresholdHigh     = 6
	thresholdVeryHigh = 8
	thresholdExtreme  = 11
)

var riskLabels = [...]string{
	RiskLow:      "Low",
	RiskModerate: "Moderate",
	RiskHigh:     "High",
	RiskVeryHigh: "Very High",
	RiskExtreme:  "Extreme",
}

// Classify maps a UV index onto a risk level, evaluating the threshold
// ladder low to high, first match wins.
func Classify(uvIndex float64) RiskLevel {
	switch {
	case uvIndex < thresholdModerate:
		return RiskLow
	case uvIndex < thresholdHigh:
		return RiskModerate
	case uvIndex < thresholdVeryHigh:
		return RiskHigh
	case uvIndex < thresholdExtreme:
		return RiskVeryHigh
	default:
		return RiskExtreme
	}
}

func (r RiskLevel) String() string {
	if r < RiskLow || r > RiskExtreme {
		return "Unknown"
	}
	return riskLabels[r]
}

func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}
