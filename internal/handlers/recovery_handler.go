package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/models"
	"creditflow/internal/pagination"
	"creditflow/internal/services"
)

// RecoveryHandler handles recovery (payment) posting and reads.
type RecoveryHandler struct {
	recoveryService services.RecoveryServicer
	userService     services.UserServicer
	historyService  services.HistoryServicer
}

// NewRecoveryHandler creates a new RecoveryHandler.
func NewRecoveryHandler(recoveryService services.RecoveryServicer, userService services.UserServicer, historyService services.HistoryServicer) *RecoveryHandler {
	return &RecoveryHandler{recoveryService: recoveryService, userService: userService, historyService: historyService}
}

// PostRecoveryRequest represents the request payload for posting a recovery.
type PostRecoveryRequest struct {
	TermID      uint               `json:"term_id" binding:"required"`
	Amount      int64              `json:"amount" binding:"required,gt=0"`
	PaymentMode models.PaymentMode `json:"payment_mode" binding:"required,payment_mode"`
	Receipt     string             `json:"receipt" binding:"max=255"`
}

// PostRecovery handles posting a recovery against an installment term.
// @Summary     Post a recovery
// @Description Record a payment against a term, updating term, debt, and portfolio balances atomically
// @Tags        recoveries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PostRecoveryRequest true "Recovery details"
// @Success     201 {object} models.Recovery "Recovery posted"
// @Failure     400 {object} ErrorResponse "Invalid input or amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Term not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recoveries [post]
func (h *RecoveryHandler) PostRecovery(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PostRecoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	recovery, err := h.recoveryService.PostRecovery(userID, req.TermID, req.Amount, req.PaymentMode, req.Receipt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.historyService.Record(userID, "POST_RECOVERY", "recovery", recovery.ID, c.ClientIP(),
		map[string]interface{}{"term_id": req.TermID, "amount": req.Amount, "payment_mode": req.PaymentMode})

	c.JSON(http.StatusCreated, gin.H{"recovery": recovery})
}

// GetRecoveries handles listing recoveries visible to the authenticated user.
// @Summary     Get recoveries
// @Description Get a paginated list of recoveries within the caller's visibility scope
// @Tags        recoveries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       term_id   query int false "Filter by term"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Recovery] "Paginated recoveries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recoveries [get]
func (h *RecoveryHandler) GetRecoveries(c *gin.Context) {
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

	var termID *uint
	if v := c.Query("term_id"); v != "" {
		id, err := parseQueryID(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid term_id"))
			return
		}
		termID = &id
	}

	result, err := h.recoveryService.ListRecoveries(viewer, page, termID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecovery handles retrieving a specific recovery.
// @Summary     Get recovery by ID
// @Description Get a single recovery, if visible to the caller
// @Tags        recoveries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Recovery ID"
// @Success     200 {object} models.Recovery "Recovery"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Recovery not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recoveries/{id} [get]
func (h *RecoveryHandler) GetRecovery(c *gin.Context) {
	viewer, err := currentUser(c, h.userService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recoveryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	recovery, err := h.recoveryService.GetRecoveryByID(viewer, recoveryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recovery": recovery})
}
