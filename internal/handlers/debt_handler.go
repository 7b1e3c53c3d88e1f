package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/models"
	"creditflow/internal/pagination"
	"creditflow/internal/services"
)

// DebtHandler handles read access to debts and their installment terms.
type DebtHandler struct {
	debtService services.DebtServicer
	userService services.UserServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer, userService services.UserServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService, userService: userService}
}

// GetDebts handles listing debts visible to the authenticated user.
// @Summary     Get debts
// @Description Get a paginated list of debts within the caller's visibility scope
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       status    query string false "Filter by status"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Debt] "Paginated debts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [get]
func (h *DebtHandler) GetDebts(c *gin.Context) {
	viewer, err := currentUser(c, h.userService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var status *models.DebtStatus
	if v := c.Query("status"); v != "" {
		s := models.DebtStatus(v)
		if !s.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid status filter"))
			return
		}
		status = &s
	}

	result, err := h.debtService.ListDebts(viewer, page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDebt handles retrieving a specific debt with its terms.
// @Summary     Get debt by ID
// @Description Get a single debt with its installment schedule, if visible to the caller
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Debt ID"
// @Success     200 {object} models.Debt "Debt"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Permission denied"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [get]
func (h *DebtHandler) GetDebt(c *gin.Context) {
	viewer, err := currentUser(c, h.userService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.GetDebtByID(viewer, debtID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// GetDebtTerms handles listing the installment terms of a debt.
// @Summary     Get debt terms
// @Description Get the installment schedule of a debt ordered by due date
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Debt ID"
// @Success     200 {object} []models.Term "Terms"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id}/terms [get]
func (h *DebtHandler) GetDebtTerms(c *gin.Context) {
	viewer, err := currentUser(c, h.userService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	terms, err := h.debtService.ListDebtTerms(viewer, debtID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"terms": terms})
}

// GetTerm handles retrieving a single installment term.
// @Summary     Get term by ID
// @Description Get a single installment term, if its debt is visible to the caller
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Term ID"
// @Success     200 {object} models.Term "Term"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Term not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /terms/{id} [get]
func (h *DebtHandler) GetTerm(c *gin.Context) {
	viewer, err := currentUser(c, h.userService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	termID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	term, err := h.debtService.GetTermByID(viewer, termID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"term": term})
}
