package uvmodel

import (
	"bytes"
	"encoding/csv"
	"math"
	"reflect"
	"strconv"
	"testing"
)

func TestRiskCurveShape(t *testing.T) {
	m := defaultModel()
	safe := 37.5

	curve := m.RiskCurve(safe)

	// Domain 0..180 at 1-minute steps, endpoints inclusive.
	if len(curve) != 181 {
		t.Fatalf("expected 181 samples, got %d", len(curve))
	}
	if curve[0].Minute != 0 || curve[len(curve)-1].Minute != 180 {
		t.Errorf("curve domain = [%v, %v], want [0, 180]", curve[0].Minute, curve[len(curve)-1].Minute)
	}

	// Near-zero at the start, near-one at the end, monotonically increasing.
	if curve[0].Risk > 0.05 {
		t.Errorf("risk(0) = %v, want near 0", curve[0].Risk)
	}
	if curve[len(curve)-1].Risk < 0.95 {
		t.Errorf("risk(180) = %v, want near 1", curve[len(curve)-1].Risk)
	}
	for i := 1; i < len(curve); i++ {
		if curve[i].Risk <= curve[i-1].Risk {
			t.Fatalf("risk must increase monotonically, broke at minute %v", curve[i].Minute)
		}
	}
}

func TestRiskCurveLogisticMidpoint(t *testing.T) {
	m := defaultModel()

	// The logistic midpoint sits exactly at the safe exposure time.
	curve := m.RiskCurve(60)
	var at60 float64
	for _, pt := range curve {
		if pt.Minute == 60 {
			at60 = pt.Risk
		}
	}
	if math.Abs(at60-0.5) > 1e-12 {
		t.Errorf("risk(safe_time) = %v, want 0.5", at60)
	}
}

func TestRiskCurveIdempotent(t *testing.T) {
	m := defaultModel()

	first := m.RiskCurve(37.5)
	second := m.RiskCurve(37.5)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must produce identical curves")
	}
}

func TestCurveWriteCSV(t *testing.T) {
	m := defaultModel()
	curve := m.RiskCurve(37.5)

	var buf bytes.Buffer
	if err := curve.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading exported CSV: %v", err)
	}

	if len(rows) != len(curve)+1 {
		t.Fatalf("expected %d rows including header, got %d", len(curve)+1, len(rows))
	}

	header := rows[0]
	if len(header) != 2 || header[0] != "minute" || header[1] != "risk" {
		t.Errorf("unexpected header row: %v", header)
	}

	for i, row := range rows[1:] {
		minute, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			t.Fatalf("row %d: bad minute %q: %v", i, row[0], err)
		}
		risk, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			t.Fatalf("row %d: bad risk %q: %v", i, row[1], err)
		}

		if minute != curve[i].Minute {
			t.Errorf("row %d: minute = %v, want %v", i, minute, curve[i].Minute)
		}
		if risk != curve[i].Risk {
			t.Errorf("row %d: risk = %v, want %v", i, risk, curve[i].Risk)
		}
	}
}
