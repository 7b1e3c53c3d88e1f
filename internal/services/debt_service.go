package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/models"
	"creditflow/internal/pagination"
	"creditflow/internal/scope"
)

// debtService is the read side over debts and terms. Debts are created
// only by the sale promotion and mutated only by the posting engine and
// the status sweep, so there are no write operations here.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// GetDebtByID retrieves a debt visible to the viewer, with its terms.
func (s *debtService) GetDebtByID(viewer *models.User, debtID uint) (*models.Debt, error) {
	resolver := scope.NewResolver(viewer)

	var debt models.Debt
	err := s.db.Scopes(resolver.Debts()).
		Preload("Terms", func(db *gorm.DB) *gorm.DB { return db.Order("term_date ASC") }).
		Preload("Sale.Customer").
		First(&debt, debtID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}

// ListDebts retrieves a paginated list of debts visible to the viewer.
func (s *debtService) ListDebts(viewer *models.User, page pagination.PageRequest, status *models.DebtStatus) (*pagination.PageResponse[models.Debt], error) {
	page.Defaults()
	resolver := scope.NewResolver(viewer)

	base := s.db.Model(&models.Debt{}).Scopes(resolver.Debts())
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var debts []models.Debt
	if err := base.Scopes(pagination.Paginate(page)).
		Order("start_date DESC").
		Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(debts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTermByID retrieves a term whose debt is visible to the viewer.
func (s *debtService) GetTermByID(viewer *models.User, termID uint) (*models.Term, error) {
	resolver := scope.NewResolver(viewer)

	var term models.Term
	err := s.db.
		Where("terms.debt_id IN (?)", s.db.Model(&models.Debt{}).Select("id").Scopes(resolver.Debts())).
		First(&term, termID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTermNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &term, nil
}

// ListDebtTerms retrieves all terms of one visible debt, due date order.
func (s *debtService) ListDebtTerms(viewer *models.User, debtID uint) ([]models.Term, error) {
	if _, err := s.GetDebtByID(viewer, debtID); err != nil {
		return nil, err
	}

	var terms []models.Term
	if err := s.db.Where("debt_id = ?", debtID).
		Order("term_date ASC").
		Find(&terms).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return terms, nil
}
