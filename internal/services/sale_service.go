package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/models"
	"creditflow/internal/pagination"
	"creditflow/internal/scope"
)

// saleService handles credit sales and the sale-to-debt promotion.
type saleService struct {
	db               *gorm.DB
	portfolioService PortfolioServicer
}

// NewSaleService creates a new SaleServicer.
func NewSaleService(db *gorm.DB, portfolioService PortfolioServicer) SaleServicer {
	return &saleService{db: db, portfolioService: portfolioService}
}

// CreateSale records a new credit sale in pending approval. When no
// portfolio is given, the commercial's first active portfolio is used.
func (s *saleService) CreateSale(commercialID, customerID uint, portfolioID *uint, totalAmount, deposit int64, proofDoc string) (*models.CreditSale, error) {
	if totalAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "total amount must be greater than zero")
	}
	if deposit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "deposit cannot be negative")
	}
	if deposit >= totalAmount {
		// A fully-deposited sale finances nothing; a zero-amount debt
		// could never be settled by a recovery posting.
		return nil, apperrors.ErrInvalidDeposit
	}

	var customer models.Customer
	if err := s.db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if portfolioID == nil {
		pf, err := s.portfolioService.FirstActivePortfolio(commercialID)
		if err != nil && !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			return nil, err
		}
		if pf != nil {
			portfolioID = &pf.ID
		}
	}

	sale := &models.CreditSale{
		CustomerID:   customerID,
		CommercialID: commercialID,
		PortfolioID:  portfolioID,
		SaleDate:     time.Now(),
		TotalAmount:  totalAmount,
		Deposit:      deposit,
		Status:       models.SaleStatusPendingApproval,
		ProofDoc:     proofDoc,
	}
	if err := s.db.Create(sale).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return sale, nil
}

// GetSaleByID retrieves a sale visible to the viewer.
func (s *saleService) GetSaleByID(viewer *models.User, saleID uint) (*models.CreditSale, error) {
	resolver := scope.NewResolver(viewer)
	if !resolver.HasAnySaleAccess() {
		return nil, apperrors.ErrPermissionDenied
	}

	var sale models.CreditSale
	err := s.db.Scopes(resolver.Sales()).
		Preload("Customer").Preload("Debt").
		First(&sale, saleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSaleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &sale, nil
}

// ListSales retrieves a paginated, filtered list of sales visible to the viewer.
func (s *saleService) ListSales(viewer *models.User, page pagination.PageRequest, filter SaleFilter) (*pagination.PageResponse[models.CreditSale], error) {
	page.Defaults()
	resolver := scope.NewResolver(viewer)

	base := s.db.Model(&models.CreditSale{}).Scopes(resolver.Sales())
	base = applySaleFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var sales []models.CreditSale
	if err := base.Scopes(pagination.Paginate(page)).
		Order("sale_date DESC").
		Find(&sales).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(sales, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applySaleFilters(q *gorm.DB, f SaleFilter) *gorm.DB {
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.PortfolioID != nil {
		q = q.Where("portfolio_id = ?", *f.PortfolioID)
	}
	if f.FromDate != nil {
		q = q.Where("sale_date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("sale_date <= ?", *f.ToDate)
	}
	return q
}

// UpdateSaleStatus moves a sale through its state machine. The first
// transition into approved spawns the debt and its installment schedule
// in the same transaction; repeated approvals are idempotent because
// the debt's existence is checked inside the transaction.
func (s *saleService) UpdateSaleStatus(saleID uint, newStatus models.CreditSaleStatus, opts PromotionOptions) (*models.CreditSale, error) {
	if !newStatus.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown sale status")
	}

	var sale models.CreditSale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Serializes concurrent approvals of the same sale so only
		// one of them passes the debt-existence check below.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sale, saleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSaleNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if sale.Status == newStatus {
			// Idempotent no-op; in particular a repeated approval must
			// not spawn a second debt.
			return nil
		}
		if !sale.Status.CanTransitionTo(newStatus) {
			return apperrors.WithMessage(apperrors.ErrInvalidTransition,
				"cannot move sale from "+string(sale.Status)+" to "+string(newStatus))
		}

		if newStatus == models.SaleStatusApproved {
			if err := s.promoteToDebt(tx, &sale, opts); err != nil {
				return err
			}
		}

		sale.Status = newStatus
		if err := tx.Model(&models.CreditSale{}).Where("id = ?", sale.ID).
			Update("status", newStatus).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// promoteToDebt creates the debt for an approved sale, plus one monthly
// term per month of duration. The last term absorbs the cent remainder
// so the schedule sums exactly to the financed amount.
func (s *saleService) promoteToDebt(tx *gorm.DB, sale *models.CreditSale, opts PromotionOptions) error {
	var existing int64
	if err := tx.Model(&models.Debt{}).Where("sale_id = ?", sale.ID).
		Count(&existing).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing > 0 {
		return nil
	}

	startDate := truncateDay(time.Now())
	if opts.StartDate != nil {
		startDate = truncateDay(*opts.StartDate)
	}
	monthDuration := opts.MonthDuration
	if monthDuration <= 0 {
		monthDuration = 1
	}
	regulationMode := opts.RegulationMode
	if regulationMode == "" {
		regulationMode = "UNDEFINED"
	}

	creditAmount := sale.CreditAmount()
	monthly := creditAmount / int64(monthDuration)

	debt := &models.Debt{
		SaleID:         sale.ID,
		InitAmount:     creditAmount,
		Balance:        creditAmount,
		StartDate:      startDate,
		MonthlyPayment: monthly,
		MonthDuration:  monthDuration,
		RegulationMode: regulationMode,
		Status:         models.DebtStatusNotStarted,
	}
	if err := tx.Create(debt).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	terms := make([]models.Term, 0, monthDuration)
	allocated := int64(0)
	for i := 0; i < monthDuration; i++ {
		amount := monthly
		if i == monthDuration-1 {
			amount = creditAmount - allocated
		}
		allocated += amount
		terms = append(terms, models.Term{
			DebtID:       debt.ID,
			TermDate:     startDate.AddDate(0, i+1, 0),
			ExceptAmount: amount,
			Status:       models.TermStatusUnpaid,
		})
	}
	if err := tx.Create(&terms).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
