package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/models"
	"creditflow/internal/pagination"
	"creditflow/internal/services"
)

// SaleHandler handles credit-sale requests, including status transitions.
type SaleHandler struct {
	saleService    services.SaleServicer
	userService    services.UserServicer
	historyService services.HistoryServicer
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleService services.SaleServicer, userService services.UserServicer, historyService services.HistoryServicer) *SaleHandler {
	return &SaleHandler{saleService: saleService, userService: userService, historyService: historyService}
}

// CreateSaleRequest represents the request payload for creating a credit sale.
type CreateSaleRequest struct {
	CustomerID  uint   `json:"customer_id" binding:"required"`
	PortfolioID *uint  `json:"portfolio_id"`
	TotalAmount int64  `json:"total_amount" binding:"required,gt=0"`
	Deposit     int64  `json:"deposit" binding:"omitempty,gte=0"`
	ProofDoc    string `json:"proof_doc" binding:"max=255"`
}

// UpdateSaleStatusRequest represents the request payload for a status transition.
// The schedule fields are only consulted when the transition approves the sale.
type UpdateSaleStatusRequest struct {
	Status         models.CreditSaleStatus `json:"status" binding:"required,sale_status"`
	StartDate      *time.Time              `json:"start_date"`
	MonthDuration  int                     `json:"month_duration" binding:"omitempty,gt=0,lte=120"`
	RegulationMode string                  `json:"regulation_mode" binding:"max=50"`
}

// CreateSale handles the creation of a new credit sale.
// @Summary     Create a credit sale
// @Description Register a new credit sale in pending approval status
// @Tags        sales
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSaleRequest true "Sale details"
// @Success     201 {object} models.CreditSale "Sale created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Customer or portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sale, err := h.saleService.CreateSale(userID, req.CustomerID, req.PortfolioID, req.TotalAmount, req.Deposit, req.ProofDoc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.historyService.Record(userID, "CREATE_SALE", "credit_sale", sale.ID, c.ClientIP(),
		map[string]interface{}{"total_amount": req.TotalAmount, "deposit": req.Deposit, "customer_id": req.CustomerID})

	c.JSON(http.StatusCreated, gin.H{"sale": sale})
}

// GetSales handles listing credit sales visible to the authenticated user.
// @Summary     Get credit sales
// @Description Get a paginated list of credit sales within the caller's visibility scope
// @Tags        sales
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       status       query string false "Filter by status"
// @Param       customer_id  query int    false "Filter by customer"
// @Param       portfolio_id query int    false "Filter by portfolio"
// @Param       from         query string false "Created on or after (RFC 3339)"
// @Param       to           query string false "Created before (RFC 3339)"
// @Param       page         query int    false "Page number (default 1)"
// @Param       page_size    query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.CreditSale] "Paginated sales"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sales [get]
func (h *SaleHandler) GetSales(c *gin.Context) {
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

	filter, err := parseSaleFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.saleService.ListSales(viewer, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSale handles retrieving a specific credit sale.
// @Summary     Get credit sale by ID
// @Description Get a single credit sale by its ID, if visible to the caller
// @Tags        sales
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Sale ID"
// @Success     200 {object} models.CreditSale "Sale"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Permission denied"
// @Failure     404 {object} ErrorResponse "Sale not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	viewer, err := currentUser(c, h.userService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	saleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	sale, err := h.saleService.GetSaleByID(viewer, saleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sale": sale})
}

// UpdateSaleStatus handles a credit-sale status transition. Approving a sale
// spawns its debt and installment schedule.
// @Summary     Update sale status
// @Description Move a credit sale through its status lifecycle; approval creates the debt
// @Tags        sales
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                     true "Sale ID"
// @Param       request body UpdateSaleStatusRequest true "Target status and optional schedule"
// @Success     200 {object} models.CreditSale "Sale updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Sale not found"
// @Failure     409 {object} ErrorResponse "Invalid transition"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sales/{id}/status [patch]
func (h *SaleHandler) UpdateSaleStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	saleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	opts := services.PromotionOptions{
		StartDate:      req.StartDate,
		MonthDuration:  req.MonthDuration,
		RegulationMode: req.RegulationMode,
	}

	sale, err := h.saleService.UpdateSaleStatus(saleID, req.Status, opts)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.historyService.Record(userID, "UPDATE_SALE_STATUS", "credit_sale", sale.ID, c.ClientIP(),
		map[string]interface{}{"status": req.Status})

	c.JSON(http.StatusOK, gin.H{"sale": sale})
}

// parseSaleFilter parses the optional list filters from query parameters.
func parseSaleFilter(c *gin.Context) (services.SaleFilter, error) {
	var filter services.SaleFilter

	if v := c.Query("status"); v != "" {
		status := models.CreditSaleStatus(v)
		if !status.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid status filter")
		}
		filter.Status = &status
	}
	if v := c.Query("customer_id"); v != "" {
		id, err := parseQueryID(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid customer_id")
		}
		filter.CustomerID = &id
	}
	if v := c.Query("portfolio_id"); v != "" {
		id, err := parseQueryID(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid portfolio_id")
		}
		filter.PortfolioID = &id
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be RFC 3339")
		}
		filter.FromDate = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be RFC 3339")
		}
		filter.ToDate = &t
	}

	return filter, nil
}
