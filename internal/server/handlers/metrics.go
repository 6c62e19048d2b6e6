package handlers

import (
	"context"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/server/middlewares"
)

// AppMetrics holds application-level metrics (simulations, ozone lookups).
type AppMetrics struct {
	mutex             sync.RWMutex
	simulationsTotal  map[string]int64
	ozoneLookupsTotal map[string]int64
}

type MetricsHandler struct {
	logger     *zap.Logger
	appMetrics *AppMetrics
}

func NewMetricsHandler(logger *zap.Logger) *MetricsHandler {
	return &MetricsHandler{
		logger: logger,
		appMetrics: &AppMetrics{
			simulationsTotal:  make(map[string]int64),
			ozoneLookupsTotal: make(map[string]int64),
		},
	}
}

// RecordSimulation records one completed evaluation, labeled by risk level.
func (h *MetricsHandler) RecordSimulation(ctx context.Context, riskLevel string) {
	h.appMetrics.mutex.Lock()
	h.appMetrics.simulationsTotal[riskLevel]++
	h.appMetrics.mutex.Unlock()
}

// RecordOzoneLookup records one live ozone lookup, labeled by outcome.
func (h *MetricsHandler) RecordOzoneLookup(ctx context.Context, outcome string) {
	h.appMetrics.mutex.Lock()
	h.appMetrics.ozoneLookupsTotal[outcome]++
	h.appMetrics.mutex.Unlock()
}

// ServeMetrics exposes metrics in Prometheus text format. HTTP metrics come
// from the metrics middleware via the Gin context.
func (h *MetricsHandler) ServeMetrics(c *gin.Context) {
	h.appMetrics.mutex.RLock()
	defer h.appMetrics.mutex.RUnlock()

	httpMetrics := h.getHTTPMetricsFromContext(c)

	response := ""

	if httpMetrics != nil {
		httpMetrics.Mutex.RLock()

		var avgDuration float64
		if len(httpMetrics.RequestDurations) > 0 {
			sum := 0.0
			for _, d := range httpMetrics.RequestDurations {
				sum += d
			}
			avgDuration = sum / float64(len(httpMetrics.RequestDurations))
		}

		response += "# HELP http_requests_total Total number of HTTP requests\n"
		response += "# TYPE http_requests_total counter\n"
		for key, count := range httpMetrics.RequestsTotal {
			response += "http_requests_total{route_status=\"" + key + "\"} " + strconv.FormatInt(count, 10) + "\n"
		}

		response += "\n# HELP http_request_duration_seconds_avg Average duration of HTTP requests\n"
		response += "# TYPE http_request_duration_seconds_avg gauge\n"
		response += "http_request_duration_seconds_avg " + strconv.FormatFloat(avgDuration, 'f', 6, 64) + "\n"

		response += "\n# HELP http_active_requests Number of active HTTP requests\n"
		response += "# TYPE http_active_requests gauge\n"
		response += "http_active_requests " + strconv.FormatInt(httpMetrics.ActiveRequests, 10) + "\n"

		httpMetrics.Mutex.RUnlock()
	}

	response += "\n# HELP simulations_total Total completed simulations by risk level\n"
	response += "# TYPE simulations_total counter\n"
	for level, count := range h.appMetrics.simulationsTotal {
		response += "simulations_total{risk_level=\"" + level + "\"} " + strconv.FormatInt(count, 10) + "\n"
	}

	response += "\n# HELP ozone_lookups_total Total live ozone lookups by outcome\n"
	response += "# TYPE ozone_lookups_total counter\n"
	for outcome, count := range h.appMetrics.ozoneLookupsTotal {
		response += "ozone_lookups_total{outcome=\"" + outcome + "\"} " + strconv.FormatInt(count, 10) + "\n"
	}

	c.Header("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	c.String(200, response)
}

func (h *MetricsHandler) getHTTPMetricsFromContext(c *gin.Context) *middlewares.HTTPMetrics {
	if value, exists := c.Get(middlewares.HTTPMetricsKey); exists {
		if metrics, ok := value.(*middlewares.HTTPMetrics); ok {
			return metrics
		}
	}
	return nil
}
