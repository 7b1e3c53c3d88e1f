package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/pagination"
	"creditflow/internal/services"
)

// HistoryHandler exposes the append-only audit trail of an entity.
type HistoryHandler struct {
	historyService services.HistoryServicer
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService services.HistoryServicer) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// allowed audit entity types, matching what the services record.
var historyEntityTypes = map[string]bool{
	"portfolio":   true,
	"customer":    true,
	"credit_sale": true,
	"debt":        true,
	"recovery":    true,
}

// GetEntityHistory handles listing the audit entries of an entity.
// @Summary     Get entity history
// @Description Get the audit trail of an entity, newest first
// @Tags        history
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       type      path  string true  "Entity type (portfolio, customer, credit_sale, debt, recovery)"
// @Param       id        path  int    true  "Entity ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.History] "Paginated audit entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /history/{type}/{id} [get]
func (h *HistoryHandler) GetEntityHistory(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	entityType := c.Param("type")
	if !historyEntityTypes[entityType] {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid entity type"))
		return
	}

	entityID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.historyService.ListEntityHistory(entityType, entityID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
