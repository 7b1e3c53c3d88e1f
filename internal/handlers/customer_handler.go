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

// CustomerHandler handles customer-related requests.
type CustomerHandler struct {
	customerService services.CustomerServicer
	userService     services.UserServicer
	historyService  services.HistoryServicer
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService services.CustomerServicer, userService services.UserServicer, historyService services.HistoryServicer) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, userService: userService, historyService: historyService}
}

// PhysicalDetailRequest carries the fields specific to a physical person.
type PhysicalDetailRequest struct {
	FirstName        string     `json:"first_name" binding:"required,min=1,max=150"`
	LastName         string     `json:"last_name" binding:"required,min=1,max=150"`
	BirthDay         *time.Time `json:"birth_day"`
	BirthPlace       string     `json:"birth_place" binding:"max=255"`
	IDDocumentType   string     `json:"id_document_type" binding:"max=50"`
	IDDocumentNumber string     `json:"id_document_number" binding:"max=100"`
	Nationality      string     `json:"nationality" binding:"max=100"`
}

// MoralDetailRequest carries the fields specific to a moral person.
type MoralDetailRequest struct {
	BusinessName             string `json:"business_name" binding:"required,min=1,max=255"`
	RegistrationNumber       string `json:"registration_number" binding:"max=20"`
	LegalForm                string `json:"legal_form" binding:"max=100"`
	RepresentativeFirstName  string `json:"representative_first_name" binding:"max=150"`
	RepresentativeLastName   string `json:"representative_last_name" binding:"max=150"`
	RepresentativeIDDocument string `json:"representative_id_document" binding:"max=100"`
}

// CustomerRequest represents the request payload for creating or updating a customer.
type CustomerRequest struct {
	Type           models.CustomerType    `json:"type" binding:"required,customer_type"`
	PortfolioID    *uint                  `json:"portfolio_id"`
	Email          string                 `json:"email" binding:"omitempty,email,max=255"`
	Phone          string                 `json:"phone" binding:"omitempty,phone"`
	Mobile         string                 `json:"mobile" binding:"omitempty,phone"`
	Address        string                 `json:"address" binding:"max=500"`
	PhysicalDetail *PhysicalDetailRequest `json:"physical_detail"`
	MoralDetail    *MoralDetailRequest    `json:"moral_detail"`
}

func (r *CustomerRequest) toInput() services.CustomerInput {
	input := services.CustomerInput{
		Type:        r.Type,
		PortfolioID: r.PortfolioID,
		Email:       r.Email,
		Phone:       r.Phone,
		Mobile:      r.Mobile,
		Address:     r.Address,
	}
	if r.PhysicalDetail != nil {
		input.PhysicalDetail = &models.PhysicalPersonDetail{
			FirstName:        r.PhysicalDetail.FirstName,
			LastName:         r.PhysicalDetail.LastName,
			BirthDay:         r.PhysicalDetail.BirthDay,
			BirthPlace:       r.PhysicalDetail.BirthPlace,
			IDDocumentType:   r.PhysicalDetail.IDDocumentType,
			IDDocumentNumber: r.PhysicalDetail.IDDocumentNumber,
			Nationality:      r.PhysicalDetail.Nationality,
		}
	}
	if r.MoralDetail != nil {
		input.MoralDetail = &models.MoralPersonDetail{
			BusinessName:             r.MoralDetail.BusinessName,
			RegistrationNumber:       r.MoralDetail.RegistrationNumber,
			LegalForm:                r.MoralDetail.LegalForm,
			RepresentativeFirstName:  r.MoralDetail.RepresentativeFirstName,
			RepresentativeLastName:   r.MoralDetail.RepresentativeLastName,
			RepresentativeIDDocument: r.MoralDetail.RepresentativeIDDocument,
		}
	}
	return input
}

// CreateCustomer handles the creation of a new customer.
// @Summary     Create a customer
// @Description Create a new customer with its type-specific detail record
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CustomerRequest true "Customer details"
// @Success     201 {object} models.Customer "Customer created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	customer, err := h.customerService.CreateCustomer(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.historyService.Record(userID, "CREATE_CUSTOMER", "customer", customer.ID, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "name": customer.DisplayName()})

	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

// GetCustomers handles listing customers visible to the authenticated user.
// @Summary     Get customers
// @Description Get a paginated list of customers within the caller's visibility scope
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Customer] "Paginated customers"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers [get]
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
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

	result, err := h.customerService.ListCustomers(viewer, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCustomer handles retrieving a specific customer.
// @Summary     Get customer by ID
// @Description Get a single customer by its ID, if visible to the caller
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Customer ID"
// @Success     200 {object} models.Customer "Customer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Permission denied"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	viewer, err := currentUser(c, h.userService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	customerID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	customer, err := h.customerService.GetCustomerByID(viewer, customerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// UpdateCustomer handles updating a customer.
// @Summary     Update customer
// @Description Update a customer's contact and detail records
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int             true "Customer ID"
// @Param       request body CustomerRequest true "Customer details"
// @Success     200 {object} models.Customer "Customer updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	customerID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	customer, err := h.customerService.UpdateCustomer(customerID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.historyService.Record(userID, "UPDATE_CUSTOMER", "customer", customer.ID, c.ClientIP(),
		map[string]interface{}{"email": req.Email, "phone": req.Phone})

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// DeactivateCustomer handles deactivating a customer.
// @Summary     Deactivate customer
// @Description Mark a customer inactive without deleting its records
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Customer ID"
// @Success     200 {object} models.Customer "Customer deactivated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id}/deactivate [post]
func (h *CustomerHandler) DeactivateCustomer(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	customerID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	customer, err := h.customerService.DeactivateCustomer(customerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.historyService.Record(userID, "DEACTIVATE_CUSTOMER", "customer", customer.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}
