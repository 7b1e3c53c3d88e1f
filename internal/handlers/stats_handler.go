package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creditflow/internal/services"
)

// StatsHandler handles dashboard statistics requests.
type StatsHandler struct {
	statsService services.StatsServicer
	userService  services.UserServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService services.StatsServicer, userService services.UserServicer) *StatsHandler {
	return &StatsHandler{statsService: statsService, userService: userService}
}

// GetDashboard handles the dashboard stats request.
// @Summary     Get dashboard stats
// @Description Aggregate outstanding balances, recovered totals, and status counts within the caller's scope
// @Tags        stats
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardStats "Dashboard aggregates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/dashboard [get]
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	viewer, err := currentUser(c, h.userService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.statsService.Dashboard(viewer)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
