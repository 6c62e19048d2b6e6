// Package simulator composes the sunburn evaluation pipeline: ozone
// resolution (live with mandatory manual fallback), UV index, risk
// classification, safe exposure time and the burn-risk curve. Every
// evaluation is stateless and independent; identical inputs produce
// identical reports.
package simulator

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/config"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/ozone"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/uvmodel"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/pkg/telemetry"
)

// OzoneProvider performs one live ozone lookup per call.
type OzoneProvider interface {
	Fetch(ctx context.Context, lat, lon float64) (ozone.Reading, error)
	Name() string
}

// MetricsRecorder interface for recording application metrics.
type MetricsRecorder interface {
	RecordSimulation(ctx context.Context, riskLevel string)
	RecordOzoneLookup(ctx context.Context, outcome string)
}

// Ozone source labels reported alongside the resolved value.
const (
	SourceLive           = "live"
	SourceManual         = "manual"
	SourceManualFallback = "manual_fallback"
)

// Ozone lookup outcomes for metrics.
const (
	LookupOK       = "ok"
	LookupFailed   = "failed"
	LookupFallback = "fallback"
)

// Input is one full snapshot of the simulation controls.
type Input struct {
	Latitude     float64
	Longitude    float64
	UseLiveOzone bool
	// ManualOzoneDU is used directly when UseLiveOzone is false and as the
	// mandatory fallback when the live lookup fails.
	ManualOzoneDU   float64
	CloudCoverPct   float64
	AltitudeKm      float64
	SPF             int
	ExposureMinutes float64
	SkinType        uvmodel.SkinType
}

// OzoneResult describes where the resolved ozone value came from.
type OzoneResult struct {
	ValueDU float64 `json:"value_du"`
	Source  string  `json:"source"`
	Warning string  `json:"warning,omitempty"`
}

// Report is the complete outcome of one evaluation.
type Report struct {
	Ozone               OzoneResult                  `json:"ozone"`
	Environment         uvmodel.EnvironmentalReading `json:"environment"`
	UVIndex             float64                      `json:"uv_index"`
	RiskLevel           uvmodel.RiskLevel            `json:"risk_level"`
	SkinType            uvmodel.SkinType             `json:"skin_type"`
	SkinTypeLabel       string                       `json:"skin_type_label"`
	BaseBurnMinutes     int                          `json:"base_burn_minutes"`
	SPF                 int                          `json:"spf"`
	SafeExposureMinutes float64                      `json:"safe_exposure_minutes"`
	ExposureMinutes     float64                      `json:"exposure_minutes"`
	ExposureExceedsSafe bool                         `json:"exposure_exceeds_safe"`
	Curve               uvmodel.Curve                `json:"curve"`
	Timestamp           string                       `json:"timestamp"`
}

type Simulator struct {
	model    uvmodel.Model
	provider OzoneProvider
	logger   *zap.Logger
	tele     *telemetry.Telemetry
	metrics  MetricsRecorder
}

func NewSimulator(cfg *config.Config, provider OzoneProvider, logger *zap.Logger, tele *telemetry.Telemetry) *Simulator {
	return &Simulator{
		model:    uvmodel.New(cfg.Model),
		provider: provider,
		logger:   logger,
		tele:     tele,
	}
}

// SetMetricsRecorder sets the metrics recorder for the simulator.
func (s *Simulator) SetMetricsRecorder(metrics MetricsRecorder) {
	s.metrics = metrics
}

// Evaluate runs the pipeline top to bottom for one input snapshot.
func (s *Simulator) Evaluate(ctx context.Context, in Input) (*Report, error) {
	tracer := s.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "simulator.Evaluate")
	defer span.End()

	span.SetAttributes(
		attribute.Bool("use_live_ozone", in.UseLiveOzone),
		attribute.String("skin_type", in.SkinType.String()),
		attribute.Int("spf", in.SPF),
	)

	oz := s.resolveOzone(ctx, in)

	env := uvmodel.EnvironmentalReading{
		OzoneDU:       oz.ValueDU,
		CloudCoverPct: in.CloudCoverPct,
		AltitudeKm:    in.AltitudeKm,
	}

	uvIndex, err := s.model.UVIndex(env)
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return nil, err
	}

	safeMinutes, err := s.model.SafeExposureMinutes(in.SPF, uvIndex, in.SkinType)
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return nil, err
	}

	level := uvmodel.Classify(uvIndex)

	report := &Report{
		Ozone:               oz,
		Environment:         env,
		UVIndex:             uvIndex,
		RiskLevel:           level,
		SkinType:            in.SkinType,
		SkinTypeLabel:       in.SkinType.Label(),
		BaseBurnMinutes:     in.SkinType.BaseBurnMinutes(),
		SPF:                 in.SPF,
		SafeExposureMinutes: safeMinutes,
		ExposureMinutes:     in.ExposureMinutes,
		ExposureExceedsSafe: in.ExposureMinutes > safeMinutes,
		Curve:               s.model.RiskCurve(safeMinutes),
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Float64("uv_index", uvIndex),
		attribute.String("risk_level", level.String()),
		attribute.Float64("safe_minutes", safeMinutes),
	)

	if s.metrics != nil {
		s.metrics.RecordSimulation(ctx, level.String())
	}

	s.logger.Info("Simulation evaluated",
		zap.Float64("ozone_du", oz.ValueDU),
		zap.String("ozone_source", oz.Source),
		zap.Float64("uv_index", uvIndex),
		zap.String("risk_level", level.String()),
		zap.Float64("safe_minutes", safeMinutes),
		zap.Bool("exceeded", report.ExposureExceedsSafe))

	return report, nil
}

// resolveOzone picks the ozone value for this run. The live lookup may fail
// for any reason; the manual value then takes over so the evaluation never
// blocks on API availability.
func (s *Simulator) resolveOzone(ctx context.Context, in Input) OzoneResult {
	if !in.UseLiveOzone || s.provider == nil {
		return OzoneResult{
			ValueDU: in.ManualOzoneDU,
			Source:  SourceManual,
		}
	}

	reading, err := s.provider.Fetch(ctx, in.Latitude, in.Longitude)
	if err != nil {
		if !errors.Is(err, ozone.ErrUnavailable) {
			s.logger.Warn("Unexpected ozone lookup error", zap.Error(err))
		}
		if s.metrics != nil {
			s.metrics.RecordOzoneLookup(ctx, LookupFallback)
		}
		return OzoneResult{
			ValueDU: in.ManualOzoneDU,
			Source:  SourceManualFallback,
			Warning: "failed to fetch live ozone, using manual value",
		}
	}

	if s.metrics != nil {
		s.metrics.RecordOzoneLookup(ctx, LookupOK)
	}

	return OzoneResult{
		ValueDU: reading.DobsonUnits,
		Source:  SourceLive,
	}
}
