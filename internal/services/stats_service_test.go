package services

import (
	"testing"
	"time"

	"creditflow/internal/models"
	"creditflow/internal/testutil"
)

func TestDashboard(t *testing.T) {
	t.Run("empty_scope_yields_zeroes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatsService(db)

		commercial := testutil.CreateTestCommercial(t, db)

		stats, err := svc.Dashboard(commercial)
		testutil.AssertNoError(t, err)
		if stats.TotalOutstanding != 0 || stats.TotalRecovered != 0 {
			t.Errorf("expected zero totals, got %d / %d", stats.TotalOutstanding, stats.TotalRecovered)
		}
		if stats.OverdueTerms != 0 {
			t.Errorf("expected no overdue terms, got %d", stats.OverdueTerms)
		}
	})

	t.Run("sums_visible_balances_and_recoveries", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatsService(db)

		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)

		saleA := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 1000, 0)
		debtA := testutil.CreateTestDebt(t, db, saleA.ID, 700, models.DebtStatusOngoing)
		termA := testutil.CreateTestTerm(t, db, debtA.ID, 500, time.Now().AddDate(0, 1, 0))
		testutil.CreateTestRecovery(t, db, termA.ID, commercial.ID, 300)

		saleB := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 500, 0)
		testutil.CreateTestDebt(t, db, saleB.ID, 500, models.DebtStatusOverdue)

		stats, err := svc.Dashboard(commercial)
		testutil.AssertNoError(t, err)
		if stats.TotalOutstanding != 1200 {
			t.Errorf("expected outstanding 1200, got %d", stats.TotalOutstanding)
		}
		if stats.TotalRecovered != 300 {
			t.Errorf("expected recovered 300, got %d", stats.TotalRecovered)
		}
		if stats.DebtsByStatus[models.DebtStatusOngoing] != 1 {
			t.Errorf("expected 1 ongoing debt, got %d", stats.DebtsByStatus[models.DebtStatusOngoing])
		}
		if stats.DebtsByStatus[models.DebtStatusOverdue] != 1 {
			t.Errorf("expected 1 overdue debt, got %d", stats.DebtsByStatus[models.DebtStatusOverdue])
		}
		if stats.SalesByStatus[models.SaleStatusPendingApproval] != 2 {
			t.Errorf("expected 2 pending sales, got %d", stats.SalesByStatus[models.SaleStatusPendingApproval])
		}
	})

	t.Run("counts_overdue_terms_including_stale_unpaid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatsService(db)

		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		sale := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 900, 0)
		debt := testutil.CreateTestDebt(t, db, sale.ID, 900, models.DebtStatusOngoing)

		// Swept overdue, stale unpaid past due, and a future term.
		swept := testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 0, -10))
		if err := db.Model(&models.Term{}).Where("id = ?", swept.ID).
			Update("status", models.TermStatusOverdue).Error; err != nil {
			t.Fatalf("failed to seed overdue term: %v", err)
		}
		testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 0, -5))
		testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 1, 0))

		stats, err := svc.Dashboard(commercial)
		testutil.AssertNoError(t, err)
		if stats.OverdueTerms != 2 {
			t.Errorf("expected 2 overdue terms, got %d", stats.OverdueTerms)
		}
	})

	t.Run("foreign_rows_are_excluded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatsService(db)

		owner := testutil.CreateTestCommercial(t, db)
		other := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		sale := testutil.CreateTestSale(t, db, owner.ID, customer.ID, nil, 1000, 0)
		testutil.CreateTestDebt(t, db, sale.ID, 1000, models.DebtStatusOngoing)

		stats, err := svc.Dashboard(other)
		testutil.AssertNoError(t, err)
		if stats.TotalOutstanding != 0 {
			t.Errorf("expected zero outstanding for foreign viewer, got %d", stats.TotalOutstanding)
		}
	})
}
