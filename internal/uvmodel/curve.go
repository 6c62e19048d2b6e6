package uvmodel

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
)

// CurvePoint is one sample of the burn-risk curve.
type CurvePoint struct {
	Minute float64 `json:"minute"`
	Risk   float64 `json:"risk"`
}

// Curve is the sampled burn-risk-over-time series, ordered by minute.
type Curve []CurvePoint

// RiskCurve samples the burn-risk curve over the configured time domain.
// Risk follows a logistic S-curve centered on safeMinutes:
//
//	risk(t) = 1 / (1 + exp(-(t-safe)/transition))
//
// The series is fully materialized and derived fresh on every call.
func (m Model) RiskCurve(safeMinutes float64) Curve {
	domain := float64(m.curveDomainMinutes)
	step := m.curveStepMinutes
	if step <= 0 {
		step = 1
	}

	curve := make(Curve, 0, int(domain/step)+1)
	for t := 0.0; t <= domain; t += step {
		curve = append(curve, CurvePoint{
			Minute: t,
			Risk:   1 / (1 + math.Exp(-(t-safeMinutes)/m.transitionMinutes)),
		})
	}
	return curve
}

// WriteCSV serializes the curve as a two-column table with a header row.
// Values are written with the shortest representation that round-trips
// through strconv.ParseFloat.
func (c Curve) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"minute", "risk"}); err != nil {
		return err
	}

	for _, pt := range c {
		row := []string{
			strconv.FormatFloat(pt.Minute, 'g', -1, 64),
			strconv.FormatFloat(pt.Risk, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
