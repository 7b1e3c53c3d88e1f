package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/models"
	"creditflow/internal/pagination"
	"creditflow/internal/scope"
)

// customerService handles customer CRUD, including the one-to-one
// physical/moral detail records.
type customerService struct {
	db *gorm.DB
}

// NewCustomerService creates a new CustomerServicer.
func NewCustomerService(db *gorm.DB) CustomerServicer {
	return &customerService{db: db}
}

// CreateCustomer creates a customer with its type-specific detail
// record in one transaction.
func (s *customerService) CreateCustomer(input CustomerInput) (*models.Customer, error) {
	if input.Type != models.CustomerTypePhysical && input.Type != models.CustomerTypeMoral {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown customer type")
	}

	customer := &models.Customer{
		Type:        input.Type,
		PortfolioID: input.PortfolioID,
		Email:       input.Email,
		Phone:       input.Phone,
		Mobile:      input.Mobile,
		Address:     input.Address,
		IsActive:    true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(customer).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if input.Type == models.CustomerTypePhysical && input.PhysicalDetail != nil {
			input.PhysicalDetail.CustomerID = customer.ID
			if err := tx.Create(input.PhysicalDetail).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			customer.PhysicalDetail = input.PhysicalDetail
		}
		if input.Type == models.CustomerTypeMoral && input.MoralDetail != nil {
			input.MoralDetail.CustomerID = customer.ID
			if err := tx.Create(input.MoralDetail).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			customer.MoralDetail = input.MoralDetail
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomerByID retrieves a customer visible to the viewer.
func (s *customerService) GetCustomerByID(viewer *models.User, customerID uint) (*models.Customer, error) {
	resolver := scope.NewResolver(viewer)

	var customer models.Customer
	err := s.db.Scopes(resolver.Customers()).
		Preload("PhysicalDetail").Preload("MoralDetail").Preload("Portfolio").
		First(&customer, customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &customer, nil
}

// ListCustomers retrieves a paginated list of customers visible to the viewer.
func (s *customerService) ListCustomers(viewer *models.User, page pagination.PageRequest) (*pagination.PageResponse[models.Customer], error) {
	page.Defaults()
	resolver := scope.NewResolver(viewer)

	base := s.db.Model(&models.Customer{}).Scopes(resolver.Customers())

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var customers []models.Customer
	if err := base.Scopes(pagination.Paginate(page)).
		Preload("PhysicalDetail").Preload("MoralDetail").
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(customers, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateCustomer updates a customer and upserts its detail record.
func (s *customerService) UpdateCustomer(customerID uint, input CustomerInput) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		customer.Email = input.Email
		customer.Phone = input.Phone
		customer.Mobile = input.Mobile
		customer.Address = input.Address
		if input.PortfolioID != nil {
			customer.PortfolioID = input.PortfolioID
		}
		if err := tx.Save(&customer).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if customer.Type == models.CustomerTypePhysical && input.PhysicalDetail != nil {
			input.PhysicalDetail.CustomerID = customer.ID
			if err := upsertDetail(tx, &models.PhysicalPersonDetail{}, customer.ID, input.PhysicalDetail); err != nil {
				return err
			}
		}
		if customer.Type == models.CustomerTypeMoral && input.MoralDetail != nil {
			input.MoralDetail.CustomerID = customer.ID
			if err := upsertDetail(tx, &models.MoralPersonDetail{}, customer.ID, input.MoralDetail); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetCustomerByID(superuserViewer(), customerID)
}

// upsertDetail creates or replaces the detail row for one customer.
func upsertDetail(tx *gorm.DB, model interface{}, customerID uint, detail interface{}) error {
	res := tx.Model(model).Where("customer_id = ?", customerID).Updates(detail)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		if err := tx.Create(detail).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

// DeactivateCustomer marks a customer inactive; customers are never
// hard-deleted while sales reference them.
func (s *customerService) DeactivateCustomer(customerID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !customer.IsActive {
		return &customer, nil
	}

	if err := s.db.Model(&customer).Update("is_active", false).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &customer, nil
}

// superuserViewer is an internal unrestricted viewer for re-reading rows
// the service itself just wrote.
func superuserViewer() *models.User {
	return &models.User{IsSuperuser: true}
}
