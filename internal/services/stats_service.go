package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/models"
	"creditflow/internal/scope"
)

// statsService aggregates the receivables position. All aggregates are
// computed over the viewer's scope, never globally.
type statsService struct {
	db *gorm.DB
}

// NewStatsService creates a new StatsServicer.
func NewStatsService(db *gorm.DB) StatsServicer {
	return &statsService{db: db}
}

type statusCount struct {
	Status string
	Count  int64
}

// Dashboard computes outstanding/recovered totals and per-status counts
// for the entities visible to the viewer.
func (s *statsService) Dashboard(viewer *models.User) (*DashboardStats, error) {
	resolver := scope.NewResolver(viewer)
	stats := &DashboardStats{
		DebtsByStatus: make(map[models.DebtStatus]int64),
		SalesByStatus: make(map[models.CreditSaleStatus]int64),
	}

	var outstanding *int64
	err := s.db.Model(&models.Debt{}).Scopes(resolver.Debts()).
		Select("SUM(balance)").Scan(&outstanding).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if outstanding != nil {
		stats.TotalOutstanding = *outstanding
	}

	var recovered *int64
	err = s.db.Model(&models.Recovery{}).Scopes(resolver.Recoveries()).
		Select("SUM(amount)").Scan(&recovered).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if recovered != nil {
		stats.TotalRecovered = *recovered
	}

	var debtCounts []statusCount
	err = s.db.Model(&models.Debt{}).Scopes(resolver.Debts()).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&debtCounts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, c := range debtCounts {
		stats.DebtsByStatus[models.DebtStatus(c.Status)] = c.Count
	}

	var saleCounts []statusCount
	err = s.db.Model(&models.CreditSale{}).Scopes(resolver.Sales()).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&saleCounts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, c := range saleCounts {
		stats.SalesByStatus[models.CreditSaleStatus(c.Status)] = c.Count
	}

	today := truncateDay(time.Now())
	err = s.db.Model(&models.Term{}).
		Where("terms.debt_id IN (?)", s.db.Model(&models.Debt{}).Select("id").Scopes(resolver.Debts())).
		Where("(status IN ? OR (status IN ? AND term_date < ?))",
			[]models.TermStatus{models.TermStatusOverdue, models.TermStatusPartiallyOverdue},
			[]models.TermStatus{models.TermStatusUnpaid, models.TermStatusPartiallyPaid},
			today,
		).
		Count(&stats.OverdueTerms).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return stats, nil
}
