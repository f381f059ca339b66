package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumora-KR/rps-server/internal/api/middleware"
	"github.com/Lumora-KR/rps-server/internal/cache"
	"github.com/Lumora-KR/rps-server/internal/services"
)

// DashboardHandler serves the admin dashboard aggregation endpoints. The
// aggregations scan every enquiry table, so responses go through a short
// lived Redis cache when one is configured.
type DashboardHandler struct {
	service services.IDashboardService
	cache   *cache.Cache
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service services.IDashboardService, c *cache.Cache) *DashboardHandler {
	return &DashboardHandler{service: service, cache: c}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	var cached services.Stats
	if h.cache.GetJSON(c.Request.Context(), "dashboard:stats", &cached) {
		respondData(c, &cached)
		return
	}

	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondErrorDetail(c, http.StatusInternalServerError, "Failed to fetch dashboard stats", err)
		return
	}
	h.cache.SetJSON(c.Request.Context(), "dashboard:stats", stats)
	respondData(c, stats)
}

func (h *DashboardHandler) ChartData(c *gin.Context) {
	var cached services.DashboardCharts
	if h.cache.GetJSON(c.Request.Context(), "dashboard:chart-data", &cached) {
		respondData(c, &cached)
		return
	}

	charts, err := h.service.ChartData(c.Request.Context())
	if err != nil {
		respondErrorDetail(c, http.StatusInternalServerError, "Failed to fetch chart data", err)
		return
	}
	h.cache.SetJSON(c.Request.Context(), "dashboard:chart-data", charts)
	respondData(c, charts)
}

func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	activities, err := h.service.RecentActivity(c.Request.Context())
	if err != nil {
		respondErrorDetail(c, http.StatusInternalServerError, "Failed to fetch recent activity", err)
		return
	}
	if activities == nil {
		activities = []services.Activity{}
	}
	respondData(c, activities)
}

func (h *DashboardHandler) QuickStats(c *gin.Context) {
	var cached services.QuickStats
	if h.cache.GetJSON(c.Request.Context(), "dashboard:quick-stats", &cached) {
		respondData(c, &cached)
		return
	}

	stats, err := h.service.QuickStats(c.Request.Context())
	if err != nil {
		respondErrorDetail(c, http.StatusInternalServerError, "Failed to fetch quick stats", err)
		return
	}
	h.cache.SetJSON(c.Request.Context(), "dashboard:quick-stats", stats)
	respondData(c, stats)
}

// Welcome is a protected probe the admin panel hits after login.
func (h *DashboardHandler) Welcome(c *gin.Context) {
	respondMessage(c, "Welcome to the RPS Tours admin dashboard", gin.H{
		"username": c.GetString(middleware.ContextKeyUsername),
	})
}
