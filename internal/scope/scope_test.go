package scope_test

import (
	"testing"
	"time"

	"creditflow/internal/models"
	"creditflow/internal/scope"
	"creditflow/internal/testutil"
)

func TestSalesScope(t *testing.T) {
	t.Run("commercial_sees_own_and_portfolio_sales", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		owner := testutil.CreateTestCommercial(t, db)
		colleague := testutil.CreateTestCommercial(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, owner.ID)
		customer := testutil.CreateTestCustomer(t, db, &portfolio.ID)

		// Directly owned sale.
		own := testutil.CreateTestSale(t, db, owner.ID, customer.ID, nil, 1000, 0)
		// Colleague's sale booked into the owner's portfolio.
		inPortfolio := testutil.CreateTestSale(t, db, colleague.ID, customer.ID, &portfolio.ID, 2000, 0)
		// Colleague's sale with no link to the owner.
		testutil.CreateTestSale(t, db, colleague.ID, customer.ID, nil, 3000, 0)

		var sales []models.CreditSale
		err := db.Scopes(scope.NewResolver(owner).Sales()).Order("id ASC").Find(&sales).Error
		if err != nil {
			t.Fatalf("scoped query failed: %v", err)
		}
		if len(sales) != 2 {
			t.Fatalf("expected 2 visible sales, got %d", len(sales))
		}
		if sales[0].ID != own.ID || sales[1].ID != inPortfolio.ID {
			t.Errorf("expected sales %d and %d, got %d and %d",
				own.ID, inPortfolio.ID, sales[0].ID, sales[1].ID)
		}
	})

	t.Run("superuser_sees_everything", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		admin := testutil.CreateTestSuperuser(t, db)
		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 1000, 0)
		testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 2000, 0)

		var count int64
		err := db.Model(&models.CreditSale{}).Scopes(scope.NewResolver(admin).Sales()).Count(&count).Error
		if err != nil {
			t.Fatalf("scoped query failed: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 sales, got %d", count)
		}
	})

	t.Run("user_without_permission_sees_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		plain := testutil.CreateTestUser(t, db)
		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 1000, 0)

		var count int64
		err := db.Model(&models.CreditSale{}).Scopes(scope.NewResolver(plain).Sales()).Count(&count).Error
		if err != nil {
			t.Fatalf("scoped query failed: %v", err)
		}
		if count != 0 {
			t.Errorf("expected empty scope, got %d", count)
		}
	})
}

func TestDebtsScopeIsTransitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	owner := testutil.CreateTestCommercial(t, db)
	other := testutil.CreateTestCommercial(t, db)
	customer := testutil.CreateTestCustomer(t, db, nil)

	ownSale := testutil.CreateTestSale(t, db, owner.ID, customer.ID, nil, 1000, 0)
	otherSale := testutil.CreateTestSale(t, db, other.ID, customer.ID, nil, 2000, 0)
	ownDebt := testutil.CreateTestDebt(t, db, ownSale.ID, 1000, models.DebtStatusOngoing)
	testutil.CreateTestDebt(t, db, otherSale.ID, 2000, models.DebtStatusOngoing)

	var debts []models.Debt
	err := db.Scopes(scope.NewResolver(owner).Debts()).Find(&debts).Error
	if err != nil {
		t.Fatalf("scoped query failed: %v", err)
	}
	if len(debts) != 1 || debts[0].ID != ownDebt.ID {
		t.Fatalf("expected only debt %d, got %v", ownDebt.ID, debts)
	}
}

func TestRecoveriesScopeIsTransitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	owner := testutil.CreateTestCommercial(t, db)
	other := testutil.CreateTestCommercial(t, db)
	customer := testutil.CreateTestCustomer(t, db, nil)

	ownSale := testutil.CreateTestSale(t, db, owner.ID, customer.ID, nil, 1000, 0)
	otherSale := testutil.CreateTestSale(t, db, other.ID, customer.ID, nil, 2000, 0)
	ownDebt := testutil.CreateTestDebt(t, db, ownSale.ID, 1000, models.DebtStatusOngoing)
	otherDebt := testutil.CreateTestDebt(t, db, otherSale.ID, 2000, models.DebtStatusOngoing)
	ownTerm := testutil.CreateTestTerm(t, db, ownDebt.ID, 1000, time.Now().AddDate(0, 1, 0))
	otherTerm := testutil.CreateTestTerm(t, db, otherDebt.ID, 2000, time.Now().AddDate(0, 1, 0))

	ownRec := testutil.CreateTestRecovery(t, db, ownTerm.ID, owner.ID, 100)
	testutil.CreateTestRecovery(t, db, otherTerm.ID, other.ID, 200)

	var recs []models.Recovery
	err := db.Scopes(scope.NewResolver(owner).Recoveries()).Find(&recs).Error
	if err != nil {
		t.Fatalf("scoped query failed: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != ownRec.ID {
		t.Fatalf("expected only recovery %d, got %v", ownRec.ID, recs)
	}
}

func TestCustomersScope(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	owner := testutil.CreateTestCommercial(t, db)
	other := testutil.CreateTestCommercial(t, db)
	ownPortfolio := testutil.CreateTestPortfolio(t, db, owner.ID)
	otherPortfolio := testutil.CreateTestPortfolio(t, db, other.ID)

	ownCustomer := testutil.CreateTestCustomer(t, db, &ownPortfolio.ID)
	testutil.CreateTestCustomer(t, db, &otherPortfolio.ID)
	testutil.CreateTestCustomer(t, db, nil)

	var customers []models.Customer
	err := db.Scopes(scope.NewResolver(owner).Customers()).Find(&customers).Error
	if err != nil {
		t.Fatalf("scoped query failed: %v", err)
	}
	if len(customers) != 1 || customers[0].ID != ownCustomer.ID {
		t.Fatalf("expected only customer %d, got %v", ownCustomer.ID, customers)
	}
}

func TestHasAnySaleAccess(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	if !scope.NewResolver(testutil.CreateTestSuperuser(t, db)).HasAnySaleAccess() {
		t.Error("expected superuser to have sale access")
	}
	if !scope.NewResolver(testutil.CreateTestCommercial(t, db)).HasAnySaleAccess() {
		t.Error("expected commercial to have sale access")
	}
	if scope.NewResolver(testutil.CreateTestUser(t, db)).HasAnySaleAccess() {
		t.Error("expected plain user to have no sale access")
	}
}
