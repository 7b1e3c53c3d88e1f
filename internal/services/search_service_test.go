package services

import (
	"testing"

	"creditflow/internal/models"
	"creditflow/internal/testutil"
)

func TestGlobalSearch(t *testing.T) {
	t.Run("short_query_returns_empty_buckets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSearchService(db)

		superuser := testutil.CreateTestSuperuser(t, db)
		testutil.CreateTestCustomer(t, db, nil)

		results, err := svc.Global(superuser, "a")
		testutil.AssertNoError(t, err)
		if len(results.Sales) != 0 || len(results.Debts) != 0 || len(results.Customers) != 0 {
			t.Error("expected empty buckets for a one-character query")
		}
	})

	t.Run("matches_customers_by_detail_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSearchService(db)

		superuser := testutil.CreateTestSuperuser(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		if err := db.Model(&models.PhysicalPersonDetail{}).
			Where("customer_id = ?", customer.ID).
			Updates(map[string]interface{}{"first_name": "Amadou", "last_name": "Diallo"}).Error; err != nil {
			t.Fatalf("failed to rename detail: %v", err)
		}

		results, err := svc.Global(superuser, "Diallo")
		testutil.AssertNoError(t, err)
		if len(results.Customers) != 1 {
			t.Fatalf("expected 1 customer hit, got %d", len(results.Customers))
		}
		if results.Customers[0].Title != "Amadou Diallo" {
			t.Errorf("expected display name in title, got %s", results.Customers[0].Title)
		}
	})

	t.Run("matches_sales_and_debts_by_customer_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSearchService(db)

		superuser := testutil.CreateTestSuperuser(t, db)
		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		sale := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 1000, 0)
		testutil.CreateTestDebt(t, db, sale.ID, 1000, models.DebtStatusOngoing)

		results, err := svc.Global(superuser, customer.Email)
		testutil.AssertNoError(t, err)
		if len(results.Sales) != 1 {
			t.Errorf("expected 1 sale hit, got %d", len(results.Sales))
		}
		if len(results.Debts) != 1 {
			t.Errorf("expected 1 debt hit, got %d", len(results.Debts))
		}
	})

	t.Run("scope_filters_foreign_rows_out", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSearchService(db)

		owner := testutil.CreateTestCommercial(t, db)
		other := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		testutil.CreateTestSale(t, db, owner.ID, customer.ID, nil, 1000, 0)

		results, err := svc.Global(other, customer.Email)
		testutil.AssertNoError(t, err)
		if len(results.Sales) != 0 {
			t.Errorf("expected no visible sale hits, got %d", len(results.Sales))
		}
	})
}
