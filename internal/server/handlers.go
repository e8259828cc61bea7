package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/pathkit/internal/middleware"
	"github.com/GriffinCanCode/pathkit/internal/monitoring"
	"github.com/GriffinCanCode/pathkit/internal/service"
	"github.com/GriffinCanCode/pathkit/internal/types"
)

// handlers contains all HTTP handlers
type handlers struct {
	registry   *service.Registry
	metrics    *monitoring.Metrics
	instanceID string
}

func newHandlers(registry *service.Registry, metrics *monitoring.Metrics, instanceID string) *handlers {
	return &handlers{
		registry:   registry,
		metrics:    metrics,
		instanceID: instanceID,
	}
}

// Root handles the banner endpoint
func (h *handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "online",
		"service":  "Pathname Service (Go)",
		"version":  "0.1.0",
		"instance": h.instanceID,
	})
}

// Health handles detailed health check
func (h *handlers) Health(c *gin.Context) {
	snap := h.metrics.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"instance":         h.instanceID,
		"uptime_seconds":   h.metrics.UptimeSeconds(),
		"service_registry": h.registry.Stats(),
		"requests":         gin.H{"total": snap.TotalRequests, "errors": snap.TotalErrors},
	})
}

// ListServices lists all available services
func (h *handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// ExecuteService executes a service tool
func (h *handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reqCtx := &types.Context{BaseDir: req.BaseDir}
	if reqID := c.GetString(middleware.RequestIDKey); reqID != "" {
		reqCtx.RequestID = &reqID
	}

	serviceID := req.ToolID
	if i := strings.Index(serviceID, "."); i > 0 {
		serviceID = serviceID[:i]
	}
	timer := monitoring.NewTimer(h.metrics, serviceID, req.ToolID)

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, reqCtx)
	if err != nil {
		timer.Stop("error")
		h.metrics.RecordToolError(serviceID, req.ToolID, "execute")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := "success"
	if !result.Success {
		status = "failure"
	}
	timer.Stop(status)

	c.JSON(http.StatusOK, result)
}
