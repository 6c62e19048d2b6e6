package uvmodel

import (
	"errors"
	"math"
	"testing"

	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/config"
)

func defaultModel() Model {
	return New(config.NewDefaultConfig().Model)
}

func TestUVIndexBaselineFormula(t *testing.T) {
	m := defaultModel()

	// With no cloud and no altitude the formula reduces to 8 * 300/ozone.
	for _, ozoneDU := range []float64{100, 150, 240, 300, 400} {
		uv, err := m.UVIndex(EnvironmentalReading{OzoneDU: ozoneDU})
		if err != nil {
			t.Fatalf("UVIndex(%v) returned error: %v", ozoneDU, err)
		}

		want := 8 * 300 / ozoneDU
		if uv != want {
			t.Errorf("UVIndex(ozone=%v) = %v, want %v", ozoneDU, uv, want)
		}
	}
}

func TestUVIndexReferenceValues(t *testing.T) {
	m := defaultModel()

	tests := []struct {
		name string
		env  EnvironmentalReading
		want float64
	}{
		{"baseline", EnvironmentalReading{OzoneDU: 300}, 8.0},
		{"full cloud keeps a quarter of UV", EnvironmentalReading{OzoneDU: 300, CloudCoverPct: 100}, 2.0},
		{"altitude adds ten percent per km", EnvironmentalReading{OzoneDU: 300, AltitudeKm: 5}, 12.0},
		{"thin ozone", EnvironmentalReading{OzoneDU: 150}, 16.0},
	}

	for _, tt := range tests {
		uv, err := m.UVIndex(tt.env)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if math.Abs(uv-tt.want) > 1e-9 {
			t.Errorf("%s: UVIndex = %v, want %v", tt.name, uv, tt.want)
		}
	}
}

func TestUVIndexMonotonicity(t *testing.T) {
	m := defaultModel()

	uvAt := func(env EnvironmentalReading) float64 {
		uv, err := m.UVIndex(env)
		if err != nil {
			t.Fatalf("UVIndex(%+v) returned error: %v", env, err)
		}
		return uv
	}

	// Strictly decreasing in ozone thickness.
	prev := math.Inf(1)
	for ozoneDU := 100.0; ozoneDU <= 400; ozoneDU += 50 {
		uv := uvAt(EnvironmentalReading{OzoneDU: ozoneDU, CloudCoverPct: 20, AltitudeKm: 1})
		if uv >= prev {
			t.Errorf("UV index should strictly decrease in ozone, got %v then %v", prev, uv)
		}
		prev = uv
	}

	// Strictly decreasing in cloud cover.
	prev = math.Inf(1)
	for cloud := 0.0; cloud <= 100; cloud += 25 {
		uv := uvAt(EnvironmentalReading{OzoneDU: 300, CloudCoverPct: cloud})
		if uv >= prev {
			t.Errorf("UV index should strictly decrease in cloud cover, got %v then %v", prev, uv)
		}
		prev = uv
	}

	// Strictly increasing in altitude.
	prev = math.Inf(-1)
	for alt := 0.0; alt <= 5; alt += 1 {
		uv := uvAt(EnvironmentalReading{OzoneDU: 300, AltitudeKm: alt})
		if uv <= prev {
			t.Errorf("UV index should strictly increase in altitude, got %v then %v", prev, uv)
		}
		prev = uv
	}
}

func TestUVIndexRejectsNonPositiveOzone(t *testing.T) {
	m := defaultModel()

	for _, ozoneDU := range []float64{0, -10} {
		_, err := m.UVIndex(EnvironmentalReading{OzoneDU: ozoneDU})
		if !errors.Is(err, ErrOzoneNotPositive) {
			t.Errorf("UVIndex(ozone=%v) error = %v, want ErrOzoneNotPositive", ozoneDU, err)
		}
	}
}

func TestSafeExposureMinutes(t *testing.T) {
	m := defaultModel()

	// SPF 30 on Type II skin (10 min base) under UV 8.0 allows 37.5 minutes.
	safe, err := m.SafeExposureMinutes(30, 8.0, SkinTypeII)
	if err != nil {
		t.Fatalf("SafeExposureMinutes returned error: %v", err)
	}
	if safe != 37.5 {
		t.Errorf("SafeExposureMinutes = %v, want 37.5", safe)
	}

	// Darker skin burns later, holding everything else fixed.
	safeDark, err := m.SafeExposureMinutes(30, 8.0, SkinTypeVI)
	if err != nil {
		t.Fatalf("SafeExposureMinutes returned error: %v", err)
	}
	if safeDark <= safe {
		t.Errorf("expected Type VI safe time %v to exceed Type II safe time %v", safeDark, safe)
	}
}

func TestSafeExposureRejectsNonPositiveUV(t *testing.T) {
	m := defaultModel()

	for _, uv := range []float64{0, -1} {
		_, err := m.SafeExposureMinutes(30, uv, SkinTypeI)
		if !errors.Is(err, ErrUVNotPositive) {
			t.Errorf("SafeExposureMinutes(uv=%v) error = %v, want ErrUVNotPositive", uv, err)
		}
	}
}
