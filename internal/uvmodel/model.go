// Package uvmodel implements the sunburn simulation math: the UV index
// formula, safe exposure time, risk classification and the burn-risk curve.
// Everything here is a pure function of its inputs plus the Model constants.
package uvmodel

import (
	"errors"

	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/config"
)

var (
	// ErrOzoneNotPositive is returned when an ozone thickness of zero or
	// below reaches the UV formula, where it is a divisor.
	ErrOzoneNotPositive = errors.New("ozone thickness must be positive")

	// ErrUVNotPositive is returned when a non-positive UV index reaches
	// the safe exposure formula, where it is a divisor. Inputs inside the
	// documented ranges always produce a positive UV index, so this guards
	// direct library use rather than the HTTP surface.
	ErrUVNotPositive = errors.New("uv index must be positive")
)

// EnvironmentalReading is the environment snapshot the UV formula consumes.
type EnvironmentalReading struct {
	OzoneDU       float64 `json:"ozone_du"`
	CloudCoverPct float64 `json:"cloud_cover_pct"`
	AltitudeKm    float64 `json:"altitude_km"`
}

// Model carries the immutable constants of the simulation formulas.
type Model struct {
	baseUVIndex   float64
	ozoneBaseDU   float64
	altitudeBoost float64
	cloudBlock    float64

	curveDomainMinutes int
	curveStepMinutes   float64
	transitionMinutes  float64
}

func New(cfg config.ModelConfig) Model {
	return Model{
		baseUVIndex:        cfg.BaseUVIndex,
		ozoneBaseDU:        cfg.OzoneBaseDU,
		altitudeBoost:      cfg.AltitudeBoost,
		cloudBlock:         cfg.CloudBlock,
		curveDomainMinutes: cfg.CurveDomainMinutes,
		curveStepMinutes:   cfg.CurveStepMinutes,
		transitionMinutes:  cfg.CurveTransitionMinutes,
	}
}

// UVIndex derives a UV index from the environment snapshot. The index is
// inversely proportional to ozone thickness relative to the baseline,
// linearly attenuated by cloud cover and linearly amplified by altitude.
// No clamping is applied to extreme-but-valid inputs.
func (m Model) UVIndex(env EnvironmentalReading) (float64, error) {
	if env.OzoneDU <= 0 {
		return 0, ErrOzoneNotPositive
	}

	baseUV := m.baseUVIndex * (m.ozoneBaseDU / env.OzoneDU)
	cloudFactor := 1 - (env.CloudCoverPct/100)*m.cloudBlock
	altitudeFactor := 1 + m.altitudeBoost*env.AltitudeKm

	return baseUV * cloudFactor * altitudeFactor, nil
}

// SafeExposureMinutes scales the skin type's unprotected burn time by the
// sunscreen protection factor, inversely scaled by UV intensity.
func (m Model) SafeExposureMinutes(spf int, uvIndex float64, skin SkinType) (float64, error) {
	if uvIndex <= 0 {
		return 0, ErrUVNotPositive
	}

	return float64(spf*skin.BaseBurnMinutes()) / uvIndex, nil
}
