package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/server/utils"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/simulator"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/uvmodel"
)

// ExportFilename is the fixed name of the downloadable risk timeline.
const ExportFilename = "uv_risk_data.csv"

type SimulateHandler struct {
	sim    *simulator.Simulator
	logger *zap.Logger
}

func NewSimulateHandler(sim *simulator.Simulator, logger *zap.Logger) *SimulateHandler {
	return &SimulateHandler{
		sim:    sim,
		logger: logger,
	}
}

// Simulate runs the full pipeline for the request snapshot and returns the
// report as JSON.
func (h *SimulateHandler) Simulate(c *gin.Context) {
	report, reqLogger, ok := h.evaluate(c)
	if !ok {
		return
	}

	reqLogger.Info("Simulation request completed",
		zap.Float64("uv_index", report.UVIndex),
		zap.String("risk_level", report.RiskLevel.String()))

	c.JSON(http.StatusOK, report)
}

// ExportCurve runs the same pipeline and serves the risk curve as a CSV
// download with a fixed filename.
func (h *SimulateHandler) ExportCurve(c *gin.Context) {
	report, reqLogger, ok := h.evaluate(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename=`+ExportFilename)
	c.Status(http.StatusOK)

	if err := report.Curve.WriteCSV(c.Writer); err != nil {
		reqLogger.Error("Failed to write CSV export", zap.Error(err))
		return
	}

	reqLogger.Info("Risk curve exported", zap.Int("samples", len(report.Curve)))
}

func (h *SimulateHandler) evaluate(c *gin.Context) (*simulator.Report, *zap.Logger, bool) {
	ctx := utils.GetContextFromGinContext(c)
	requestID := utils.GetRequestIDFromGinContext(c)

	reqLogger := h.logger.With(zap.String("request_id", requestID))

	var req SimulateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		reqLogger.Warn("Invalid request parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return nil, reqLogger, false
	}

	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		reqLogger.Warn("Request validation failed", zap.Any("validation_errors", verrs))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Request validation failed",
			Code:    "VALIDATION_ERROR",
			Details: verrs,
		})
		return nil, reqLogger, false
	}

	// The skintype validator has already vetted the identifier.
	skin, _ := uvmodel.ParseSkinType(req.SkinType)

	input := simulator.Input{
		Latitude:        req.Lat,
		Longitude:       req.Lon,
		UseLiveOzone:    req.UseLiveOzone,
		ManualOzoneDU:   req.OzoneDU,
		CloudCoverPct:   req.CloudCoverPct,
		AltitudeKm:      req.AltitudeKm,
		SPF:             req.SPF,
		ExposureMinutes: req.ExposureMinutes,
		SkinType:        skin,
	}

	reqLogger.Info("Processing simulation request",
		zap.Bool("use_live_ozone", req.UseLiveOzone),
		zap.Float64("ozone_du", req.OzoneDU),
		zap.String("skin_type", req.SkinType),
		zap.Int("spf", req.SPF))

	report, err := h.sim.Evaluate(ctx, input)
	if err != nil {
		reqLogger.Error("Simulation failed", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "Simulation failed",
			Code:    "SIMULATION_ERROR",
			Details: err.Error(),
		})
		return nil, reqLogger, false
	}

	return report, reqLogger, true
}
