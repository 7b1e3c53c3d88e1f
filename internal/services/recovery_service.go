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

// recoveryService is the posting engine: it applies a payment to a term
// and propagates it to the debt and portfolio balances atomically.
type recoveryService struct {
	db *gorm.DB
	// allowOverpayment permits postings that push the debt balance
	// below zero. Off by default; such postings fail with InvalidAmount.
	allowOverpayment bool
}

// NewRecoveryService creates a new RecoveryServicer.
func NewRecoveryService(db *gorm.DB, allowOverpayment bool) RecoveryServicer {
	return &recoveryService{db: db, allowOverpayment: allowOverpayment}
}

// PostRecovery records a payment against a term. The recovery row, the
// relative balance updates on term/debt/portfolio, and the status
// recomputation all commit or roll back together. Balance updates are
// expressed as SQL-relative increments under a row lock on the term, so
// concurrent postings against the same term serialize instead of losing
// updates.
func (s *recoveryService) PostRecovery(commercialID, termID uint, amount int64, paymentMode models.PaymentMode, receipt string) (*models.Recovery, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if !paymentMode.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown payment mode")
	}

	var recovery *models.Recovery
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the term row for the duration of the posting.
		var term models.Term
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&term, termID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTermNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var debt models.Debt
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Sale").First(&debt, term.DebtID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrDebtNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if !s.allowOverpayment && amount > debt.Balance {
			return apperrors.WithMessage(apperrors.ErrInvalidAmount,
				"recovery amount exceeds the outstanding balance")
		}

		now := time.Now()
		recovery = &models.Recovery{
			TermID:       term.ID,
			CommercialID: commercialID,
			Amount:       amount,
			Date:         now,
			PaymentMode:  paymentMode,
			Receipt:      receipt,
		}
		if err := tx.Create(recovery).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		// Relative updates, never read-modify-write on cached values.
		if err := tx.Model(&models.Term{}).Where("id = ?", term.ID).
			UpdateColumn("pay_amount", gorm.Expr("pay_amount + ?", amount)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Model(&models.Debt{}).Where("id = ?", debt.ID).
			UpdateColumn("balance", gorm.Expr("balance - ?", amount)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if debt.Sale.PortfolioID != nil {
			if err := tx.Model(&models.Portfolio{}).Where("id = ?", *debt.Sale.PortfolioID).
				UpdateColumn("balance", gorm.Expr("balance - ?", amount)).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		// Re-read the term for status derivation; the values above may
		// include concurrent postings that committed before our lock.
		if err := tx.First(&term, term.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if next := term.NextStatus(now); next != term.Status {
			updates := map[string]interface{}{"status": next}
			if next == models.TermStatusPaid && term.PaymentDate == nil {
				updates["payment_date"] = now
			}
			if err := tx.Model(&models.Term{}).Where("id = ?", term.ID).
				Updates(updates).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if err := tx.First(&debt, debt.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if debt.IsSettled() && debt.Status != models.DebtStatusPaid {
			closeDate := truncateDay(now)
			if err := tx.Model(&models.Debt{}).Where("id = ?", debt.ID).
				Updates(map[string]interface{}{
					"status":     models.DebtStatusPaid,
					"close_date": closeDate,
				}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return recovery, nil
}

// GetRecoveryByID retrieves a recovery visible to the viewer.
func (s *recoveryService) GetRecoveryByID(viewer *models.User, recoveryID uint) (*models.Recovery, error) {
	resolver := scope.NewResolver(viewer)

	var recovery models.Recovery
	err := s.db.Scopes(resolver.Recoveries()).
		Preload("Commercial").
		First(&recovery, recoveryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &recovery, nil
}

// ListRecoveries retrieves a paginated list of recoveries visible to the
// viewer, optionally limited to one term.
func (s *recoveryService) ListRecoveries(viewer *models.User, page pagination.PageRequest, termID *uint) (*pagination.PageResponse[models.Recovery], error) {
	page.Defaults()
	resolver := scope.NewResolver(viewer)

	base := s.db.Model(&models.Recovery{}).Scopes(resolver.Recoveries())
	if termID != nil {
		base = base.Where("term_id = ?", *termID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var recoveries []models.Recovery
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&recoveries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(recoveries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
