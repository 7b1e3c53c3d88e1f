package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/models"
	"creditflow/internal/pagination"
)

// portfolioService handles portfolio lifecycle. Portfolio balances are
// never touched here; only the recovery posting engine moves them.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

const portfolioRefPrefix = "PF-"

// CreatePortfolio creates a portfolio for a commercial with the next
// sequential reference (PF-001, PF-002, ...).
func (s *portfolioService) CreatePortfolio(commercialID uint, name, description string) (*models.Portfolio, error) {
	var commercial models.User
	if err := s.db.First(&commercial, commercialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if description == "" {
		description = "Main portfolio for " + commercial.FullName()
	}

	var portfolio *models.Portfolio
	err := s.db.Transaction(func(tx *gorm.DB) error {
		ref, err := nextPortfolioRef(tx)
		if err != nil {
			return err
		}

		portfolio = &models.Portfolio{
			Ref:          ref,
			Name:         name,
			CommercialID: &commercialID,
			Description:  description,
			Active:       true,
		}
		if err := tx.Create(portfolio).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return portfolio, nil
}

// nextPortfolioRef generates the next sequential reference from the
// highest existing one.
func nextPortfolioRef(tx *gorm.DB) (string, error) {
	var last models.Portfolio
	err := tx.Order("id DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return portfolioRefPrefix + "001", nil
	}
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	n, convErr := strconv.Atoi(strings.TrimPrefix(last.Ref, portfolioRefPrefix))
	if !strings.HasPrefix(last.Ref, portfolioRefPrefix) || convErr != nil {
		// Unexpected ref format, fall back to the row id.
		n = int(last.ID)
	}
	return fmt.Sprintf("%s%03d", portfolioRefPrefix, n+1), nil
}

// GetPortfolioByID retrieves a portfolio by ID.
func (s *portfolioService) GetPortfolioByID(portfolioID uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := s.db.Preload("Commercial").First(&portfolio, portfolioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &portfolio, nil
}

// ListPortfolios retrieves a paginated list of portfolios.
func (s *portfolioService) ListPortfolios(page pagination.PageRequest) (*pagination.PageResponse[models.Portfolio], error) {
	page.Defaults()

	base := s.db.Model(&models.Portfolio{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var portfolios []models.Portfolio
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&portfolios).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(portfolios, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// FirstActivePortfolio returns the commercial's oldest active portfolio,
// used as the default when a sale is created without one.
func (s *portfolioService) FirstActivePortfolio(commercialID uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := s.db.Where("commercial_id = ? AND active = ?", commercialID, true).
		Order("id ASC").
		First(&portfolio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &portfolio, nil
}

// DeactivatePortfolio marks a portfolio inactive. Portfolios are never
// hard-deleted.
func (s *portfolioService) DeactivatePortfolio(portfolioID uint) (*models.Portfolio, error) {
	portfolio, err := s.GetPortfolioByID(portfolioID)
	if err != nil {
		return nil, err
	}
	if !portfolio.Active {
		return portfolio, nil
	}

	if err := s.db.Model(portfolio).Update("active", false).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return portfolio, nil
}
