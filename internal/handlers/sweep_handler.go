package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/services"
)

// SweepHandler exposes the calendar-driven status sweep to schedulers.
// The route is guarded by the sweep API key, not by user JWTs.
type SweepHandler struct {
	sweepService services.SweepServicer
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(sweepService services.SweepServicer) *SweepHandler {
	return &SweepHandler{sweepService: sweepService}
}

// RunSweep advances overdue terms and debts as of the given date.
// @Summary     Run status sweep
// @Description Advance term and debt statuses past their calendar deadlines; idempotent for a given date
// @Tags        sweep
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true  "Sweep API key"
// @Param       as_of     query  string false "Run as of this date (RFC 3339, default now)"
// @Success     200 {object} services.SweepResult "Rows advanced"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sweep/run [post]
func (h *SweepHandler) RunSweep(c *gin.Context) {
	asOf := time.Now()
	if v := c.Query("as_of"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "as_of must be RFC 3339"))
			return
		}
		asOf = t
	}

	result, err := h.sweepService.RunStatusSweep(asOf)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
