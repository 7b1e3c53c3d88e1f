package services

import (
	"testing"

	"creditflow/internal/pagination"
	"creditflow/internal/testutil"
)

func TestCreatePortfolio(t *testing.T) {
	t.Run("assigns_sequential_refs", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		commercial := testutil.CreateTestCommercial(t, db)

		first, err := svc.CreatePortfolio(commercial.ID, "North region", "")
		testutil.AssertNoError(t, err)
		if first.Ref != "PF-001" {
			t.Errorf("expected PF-001, got %s", first.Ref)
		}
		if !first.Active {
			t.Error("expected new portfolio to be active")
		}
		if first.Balance != 0 {
			t.Errorf("expected zero balance, got %d", first.Balance)
		}

		second, err := svc.CreatePortfolio(commercial.ID, "South region", "")
		testutil.AssertNoError(t, err)
		if second.Ref != "PF-002" {
			t.Errorf("expected PF-002, got %s", second.Ref)
		}
	})

	t.Run("defaults_the_description", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		commercial := testutil.CreateTestCommercial(t, db)

		portfolio, err := svc.CreatePortfolio(commercial.ID, "Main", "")
		testutil.AssertNoError(t, err)
		if portfolio.Description == "" {
			t.Error("expected a generated description")
		}
	})

	t.Run("unknown_commercial_is_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		_, err := svc.CreatePortfolio(9999, "Orphan", "")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestFirstActivePortfolio(t *testing.T) {
	t.Run("returns_the_oldest_active_portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		commercial := testutil.CreateTestCommercial(t, db)
		inactive := testutil.CreateTestPortfolio(t, db, commercial.ID)
		if err := db.Model(inactive).Update("active", false).Error; err != nil {
			t.Fatalf("failed to deactivate portfolio: %v", err)
		}
		oldest := testutil.CreateTestPortfolio(t, db, commercial.ID)
		testutil.CreateTestPortfolio(t, db, commercial.ID)

		got, err := svc.FirstActivePortfolio(commercial.ID)
		testutil.AssertNoError(t, err)
		if got.ID != oldest.ID {
			t.Errorf("expected portfolio %d, got %d", oldest.ID, got.ID)
		}
	})

	t.Run("no_active_portfolio_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		commercial := testutil.CreateTestCommercial(t, db)

		_, err := svc.FirstActivePortfolio(commercial.ID)
		testutil.AssertAppError(t, err, "PORTFOLIO_NOT_FOUND")
	})
}

func TestDeactivatePortfolio(t *testing.T) {
	t.Run("marks_the_portfolio_inactive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		commercial := testutil.CreateTestCommercial(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, commercial.ID)

		got, err := svc.DeactivatePortfolio(portfolio.ID)
		testutil.AssertNoError(t, err)
		if got.Active {
			t.Error("expected portfolio to be inactive")
		}

		// Repeating the call is a no-op.
		again, err := svc.DeactivatePortfolio(portfolio.ID)
		testutil.AssertNoError(t, err)
		if again.Active {
			t.Error("expected portfolio to stay inactive")
		}
	})

	t.Run("unknown_portfolio_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		_, err := svc.DeactivatePortfolio(9999)
		testutil.AssertAppError(t, err, "PORTFOLIO_NOT_FOUND")
	})
}

func TestListPortfolios(t *testing.T) {
	t.Run("paginates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)

		commercial := testutil.CreateTestCommercial(t, db)
		for i := 0; i < 3; i++ {
			testutil.CreateTestPortfolio(t, db, commercial.ID)
		}

		result, err := svc.ListPortfolios(pagination.PageRequest{Page: 1, PageSize: 2})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 2 {
			t.Errorf("expected 2 items, got %d", len(result.Data))
		}
		if result.TotalItems != 3 {
			t.Errorf("expected 3 total, got %d", result.TotalItems)
		}
		if result.TotalPages != 2 {
			t.Errorf("expected 2 pages, got %d", result.TotalPages)
		}
	})
}
