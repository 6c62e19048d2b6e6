package simulator

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/config"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/ozone"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/uvmodel"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/pkg/telemetry"
)

type stubProvider struct {
	reading ozone.Reading
	err     error
	calls   int
}

func (p *stubProvider) Fetch(ctx context.Context, lat, lon float64) (ozone.Reading, error) {
	p.calls++
	return p.reading, p.err
}

func (p *stubProvider) Name() string {
	return "stub"
}

func newTestSimulator(t *testing.T, provider OzoneProvider) *Simulator {
	logger := zaptest.NewLogger(t)
	tele := &telemetry.Telemetry{}

	return NewSimulator(config.NewDefaultConfig(), provider, logger, tele)
}

func baselineInput() Input {
	return Input{
		Latitude:        28.6139,
		Longitude:       77.2090,
		UseLiveOzone:    false,
		ManualOzoneDU:   300,
		CloudCoverPct:   0,
		AltitudeKm:      0,
		SPF:             30,
		ExposureMinutes: 60,
		SkinType:        uvmodel.SkinTypeII,
	}
}

func TestEvaluateBaselinePipeline(t *testing.T) {
	sim := newTestSimulator(t, nil)

	report, err := sim.Evaluate(context.Background(), baselineInput())
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}

	if report.Ozone.Source != SourceManual {
		t.Errorf("ozone source = %q, want %q", report.Ozone.Source, SourceManual)
	}
	if report.UVIndex != 8.0 {
		t.Errorf("uv index = %v, want 8.0", report.UVIndex)
	}
	if report.RiskLevel != uvmodel.RiskVeryHigh {
		t.Errorf("risk level = %v, want Very High", report.RiskLevel)
	}
	if report.SafeExposureMinutes != 37.5 {
		t.Errorf("safe exposure = %v, want 37.5", report.SafeExposureMinutes)
	}
	if !report.ExposureExceedsSafe {
		t.Error("60 minutes of exposure should exceed 37.5 safe minutes")
	}
	if report.BaseBurnMinutes != 10 {
		t.Errorf("base burn minutes = %d, want 10", report.BaseBurnMinutes)
	}
	if len(report.Curve) != 181 {
		t.Errorf("curve samples = %d, want 181", len(report.Curve))
	}
}

func TestEvaluateUsesLiveOzone(t *testing.T) {
	provider := &stubProvider{
		reading: ozone.Reading{
			DobsonUnits: 240,
			OzoneUgM3:   513.96,
			FetchedAt:   time.Now().UTC(),
		},
	}
	sim := newTestSimulator(t, provider)

	in := baselineInput()
	in.UseLiveOzone = true

	report, err := sim.Evaluate(context.Background(), in)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}

	if provider.calls != 1 {
		t.Errorf("provider called %d times, want exactly 1", provider.calls)
	}
	if report.Ozone.Source != SourceLive {
		t.Errorf("ozone source = %q, want %q", report.Ozone.Source, SourceLive)
	}
	if report.Ozone.ValueDU != 240 {
		t.Errorf("ozone value = %v, want 240", report.Ozone.ValueDU)
	}
	if report.UVIndex != 10.0 {
		t.Errorf("uv index = %v, want 10.0 for 240 DU", report.UVIndex)
	}
	if report.Ozone.Warning != "" {
		t.Errorf("unexpected warning: %q", report.Ozone.Warning)
	}
}

func TestEvaluateFallsBackWhenLookupFails(t *testing.T) {
	provider := &stubProvider{
		err: fmt.Errorf("%w: status 500", ozone.ErrUnavailable),
	}
	sim := newTestSimulator(t, provider)

	in := baselineInput()
	in.UseLiveOzone = true
	in.ManualOzoneDU = 300

	report, err := sim.Evaluate(context.Background(), in)
	if err != nil {
		t.Fatalf("lookup failure must never fail the evaluation, got: %v", err)
	}

	if report.Ozone.Source != SourceManualFallback {
		t.Errorf("ozone source = %q, want %q", report.Ozone.Source, SourceManualFallback)
	}
	if report.Ozone.ValueDU != 300 {
		t.Errorf("ozone value = %v, want the manual 300", report.Ozone.ValueDU)
	}
	if report.Ozone.Warning == "" {
		t.Error("fallback must carry a warning for the caller")
	}
	if report.UVIndex != 8.0 {
		t.Errorf("uv index = %v, want 8.0 from the fallback value", report.UVIndex)
	}
}

func TestEvaluateWithinSafeTime(t *testing.T) {
	sim := newTestSimulator(t, nil)

	in := baselineInput()
	in.SkinType = uvmodel.SkinTypeVI
	in.ExposureMinutes = 60

	report, err := sim.Evaluate(context.Background(), in)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}

	// 30 * 30 / 8 = 112.5 safe minutes, well above the 60 minute exposure.
	if report.SafeExposureMinutes != 112.5 {
		t.Errorf("safe exposure = %v, want 112.5", report.SafeExposureMinutes)
	}
	if report.ExposureExceedsSafe {
		t.Error("exposure within safe time must not be flagged")
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	sim := newTestSimulator(t, nil)

	first, err := sim.Evaluate(context.Background(), baselineInput())
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	second, err := sim.Evaluate(context.Background(), baselineInput())
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}

	if first.UVIndex != second.UVIndex ||
		first.SafeExposureMinutes != second.SafeExposureMinutes ||
		first.RiskLevel != second.RiskLevel {
		t.Error("identical inputs must yield identical derived values")
	}
	if !reflect.DeepEqual(first.Curve, second.Curve) {
		t.Error("identical inputs must yield bit-identical curves")
	}
}

func TestEvaluateRejectsDegenerateOzone(t *testing.T) {
	sim := newTestSimulator(t, nil)

	in := baselineInput()
	in.ManualOzoneDU = 0

	if _, err := sim.Evaluate(context.Background(), in); err == nil {
		t.Error("zero ozone must surface a domain error, not Inf/NaN")
	}
}

type countingRecorder struct {
	simulations map[string]int
	lookups     map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		simulations: make(map[string]int),
		lookups:     make(map[string]int),
	}
}

func (r *countingRecorder) RecordSimulation(ctx context.Context, riskLevel string) {
	r.simulations[riskLevel]++
}

func (r *countingRecorder) RecordOzoneLookup(ctx context.Context, outcome string) {
	r.lookups[outcome]++
}

func TestEvaluateRecordsMetrics(t *testing.T) {
	provider := &stubProvider{err: ozone.ErrUnavailable}
	sim := newTestSimulator(t, provider)

	recorder := newCountingRecorder()
	sim.SetMetricsRecorder(recorder)

	in := baselineInput()
	in.UseLiveOzone = true

	if _, err := sim.Evaluate(context.Background(), in); err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}

	if recorder.lookups[LookupFallback] != 1 {
		t.Errorf("fallback lookups = %d, want 1", recorder.lookups[LookupFallback])
	}
	if recorder.simulations["Very High"] != 1 {
		t.Errorf("Very High simulations = %d, want 1", recorder.simulations["Very High"])
	}
}
