package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/server/utils"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/simulator"
)

type OzoneHandler struct {
	provider simulator.OzoneProvider
	metrics  simulator.MetricsRecorder
	logger   *zap.Logger
}

func NewOzoneHandler(provider simulator.OzoneProvider, metrics simulator.MetricsRecorder, logger *zap.Logger) *OzoneHandler {
	return &OzoneHandler{
		provider: provider,
		metrics:  metrics,
		logger:   logger,
	}
}

// GetOzone performs one live ozone lookup. Unlike the simulation endpoint
// there is no manual value to fall back to here, so an unavailable upstream
// surfaces as a gateway error.
func (h *OzoneHandler) GetOzone(c *gin.Context) {
	ctx := utils.GetContextFromGinContext(c)
	requestID := utils.GetRequestIDFromGinContext(c)

	reqLogger := h.logger.With(zap.String("request_id", requestID))

	var req OzoneRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		reqLogger.Warn("Invalid request parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return
	}

	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		reqLogger.Warn("Request validation failed", zap.Any("validation_errors", verrs))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Request validation failed",
			Code:    "VALIDATION_ERROR",
			Details: verrs,
		})
		return
	}

	if h.provider == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "Live ozone lookup is disabled",
			Code:  "OZONE_DISABLED",
		})
		return
	}

	reading, err := h.provider.Fetch(ctx, req.Lat, req.Lon)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordOzoneLookup(ctx, simulator.LookupFailed)
		}
		reqLogger.Warn("Live ozone lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "Live ozone measurement unavailable",
			Code:    "OZONE_UNAVAILABLE",
			Details: err.Error(),
		})
		return
	}

	if h.metrics != nil {
		h.metrics.RecordOzoneLookup(ctx, simulator.LookupOK)
	}

	c.JSON(http.StatusOK, reading)
}
