package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/logger"
	"creditflow/internal/models"
)

// sweepService advances term and debt statuses from calendar time and
// current balances. Intended to run once per business day from a
// scheduler; every predicate is idempotent, so overlapping runs are
// safe, only wasteful.
type sweepService struct {
	db *gorm.DB
}

// NewSweepService creates a new SweepServicer.
func NewSweepService(db *gorm.DB) SweepServicer {
	return &sweepService{db: db}
}

// RunStatusSweep applies the date-driven transitions as of the given
// day. Term transitions are set-based updates; the ongoing→overdue debt
// transition needs per-row deadline arithmetic, so malformed rows are
// logged and skipped rather than aborting the batch.
func (s *sweepService) RunStatusSweep(asOf time.Time) (*SweepResult, error) {
	day := truncateDay(asOf)
	result := &SweepResult{}

	// unpaid -> overdue once the due date has passed.
	res := s.db.Model(&models.Term{}).
		Where("status = ? AND term_date < ?", models.TermStatusUnpaid, day).
		UpdateColumn("status", models.TermStatusOverdue)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	result.TermsUpdated += res.RowsAffected

	// partially_paid -> partially_overdue once the due date has passed.
	res = s.db.Model(&models.Term{}).
		Where("status = ? AND term_date < ?", models.TermStatusPartiallyPaid, day).
		UpdateColumn("status", models.TermStatusPartiallyOverdue)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	result.TermsUpdated += res.RowsAffected

	// not_started -> ongoing once the start date is reached.
	res = s.db.Model(&models.Debt{}).
		Where("status = ? AND start_date <= ?", models.DebtStatusNotStarted, day).
		UpdateColumn("status", models.DebtStatusOngoing)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	result.DebtsUpdated += res.RowsAffected

	// ongoing -> overdue when the theoretical deadline has passed with
	// balance still outstanding.
	var ongoing []models.Debt
	if err := s.db.Where("status = ? AND balance > 0", models.DebtStatusOngoing).
		Find(&ongoing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var overdueIDs []uint
	for i := range ongoing {
		debt := &ongoing[i]
		if debt.MonthDuration <= 0 {
			logger.Get().Warnw("sweep: skipping debt with invalid duration",
				"debt_id", debt.ID,
				"month_duration", debt.MonthDuration,
			)
			continue
		}
		if debt.Deadline().Before(day) {
			overdueIDs = append(overdueIDs, debt.ID)
		}
	}
	if len(overdueIDs) > 0 {
		res = s.db.Model(&models.Debt{}).
			Where("id IN ? AND status = ?", overdueIDs, models.DebtStatusOngoing).
			UpdateColumn("status", models.DebtStatusOverdue)
		if res.Error != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		result.DebtsUpdated += res.RowsAffected
	}

	logger.Get().Infow("status sweep completed",
		"as_of", day.Format("2006-01-02"),
		"terms_updated", result.TermsUpdated,
		"debts_updated", result.DebtsUpdated,
	)
	return result, nil
}
