package services

import (
	"testing"
	"time"

	"creditflow/internal/models"
	"creditflow/internal/pagination"
	"creditflow/internal/testutil"
)

func TestPostRecovery(t *testing.T) {
	t.Run("full_payment_settles_term_and_debt", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		commercial := testutil.CreateTestCommercial(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, commercial.ID)
		customer := testutil.CreateTestCustomer(t, db, &portfolio.ID)
		sale := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, &portfolio.ID, 900, 0)
		debt := testutil.CreateTestDebt(t, db, sale.ID, 900, models.DebtStatusOngoing)
		term1 := testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 1, 0))
		term2 := testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 2, 0))
		term3 := testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 3, 0))

		// Seed the portfolio with the receivable it carries.
		if err := db.Model(&models.Portfolio{}).Where("id = ?", portfolio.ID).
			UpdateColumn("balance", int64(900)).Error; err != nil {
			t.Fatalf("failed to seed portfolio balance: %v", err)
		}

		rec, err := svc.PostRecovery(commercial.ID, term1.ID, 500, models.PaymentModeCash, "RCP-1")
		testutil.AssertNoError(t, err)
		if rec.ID == 0 {
			t.Fatal("expected non-zero recovery ID")
		}

		var gotTerm models.Term
		if err := db.First(&gotTerm, term1.ID).Error; err != nil {
			t.Fatalf("failed to reload term: %v", err)
		}
		if gotTerm.PayAmount != 500 {
			t.Errorf("expected term pay_amount 500, got %d", gotTerm.PayAmount)
		}
		if gotTerm.Status != models.TermStatusPaid {
			t.Errorf("expected term status paid, got %s", gotTerm.Status)
		}
		if gotTerm.PaymentDate == nil {
			t.Error("expected payment_date to be set on full payment")
		}

		var gotDebt models.Debt
		if err := db.First(&gotDebt, debt.ID).Error; err != nil {
			t.Fatalf("failed to reload debt: %v", err)
		}
		if gotDebt.Balance != 400 {
			t.Errorf("expected debt balance 400, got %d", gotDebt.Balance)
		}
		if gotDebt.Status != models.DebtStatusOngoing {
			t.Errorf("expected debt still ongoing, got %s", gotDebt.Status)
		}

		var gotPortfolio models.Portfolio
		if err := db.First(&gotPortfolio, portfolio.ID).Error; err != nil {
			t.Fatalf("failed to reload portfolio: %v", err)
		}
		if gotPortfolio.Balance != 400 {
			t.Errorf("expected portfolio balance 400, got %d", gotPortfolio.Balance)
		}

		// Settle the rest. The debt must close with a day-truncated date.
		_, err = svc.PostRecovery(commercial.ID, term2.ID, 300, models.PaymentModeBankTransfer, "RCP-2")
		testutil.AssertNoError(t, err)
		_, err = svc.PostRecovery(commercial.ID, term3.ID, 100, models.PaymentModeCash, "RCP-3")
		testutil.AssertNoError(t, err)

		if err := db.First(&gotDebt, debt.ID).Error; err != nil {
			t.Fatalf("failed to reload debt: %v", err)
		}
		if gotDebt.Balance != 0 {
			t.Errorf("expected debt balance 0, got %d", gotDebt.Balance)
		}
		if gotDebt.Status != models.DebtStatusPaid {
			t.Errorf("expected debt status paid, got %s", gotDebt.Status)
		}
		if gotDebt.CloseDate == nil {
			t.Fatal("expected close_date on settled debt")
		}
		if h, m, s := gotDebt.CloseDate.Clock(); h != 0 || m != 0 || s != 0 {
			t.Errorf("expected close_date truncated to day, got %v", gotDebt.CloseDate)
		}

		if err := db.First(&gotPortfolio, portfolio.ID).Error; err != nil {
			t.Fatalf("failed to reload portfolio: %v", err)
		}
		if gotPortfolio.Balance != 0 {
			t.Errorf("expected portfolio balance 0, got %d", gotPortfolio.Balance)
		}
	})

	t.Run("partial_payment_before_due_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		sale := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 600, 0)
		debt := testutil.CreateTestDebt(t, db, sale.ID, 600, models.DebtStatusOngoing)
		term := testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 1, 0))

		_, err := svc.PostRecovery(commercial.ID, term.ID, 100, models.PaymentModeCash, "")
		testutil.AssertNoError(t, err)

		var got models.Term
		if err := db.First(&got, term.ID).Error; err != nil {
			t.Fatalf("failed to reload term: %v", err)
		}
		if got.Status != models.TermStatusPartiallyPaid {
			t.Errorf("expected partially_paid, got %s", got.Status)
		}
		if got.PaymentDate != nil {
			t.Error("expected no payment_date on partial payment")
		}
	})

	t.Run("partial_payment_past_due_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		sale := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 600, 0)
		debt := testutil.CreateTestDebt(t, db, sale.ID, 600, models.DebtStatusOngoing)
		term := testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 0, -10))

		_, err := svc.PostRecovery(commercial.ID, term.ID, 100, models.PaymentModeCash, "")
		testutil.AssertNoError(t, err)

		var got models.Term
		if err := db.First(&got, term.ID).Error; err != nil {
			t.Fatalf("failed to reload term: %v", err)
		}
		if got.Status != models.TermStatusPartiallyOverdue {
			t.Errorf("expected partially_overdue, got %s", got.Status)
		}
	})

	t.Run("two_postings_accumulate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		sale := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 600, 0)
		debt := testutil.CreateTestDebt(t, db, sale.ID, 600, models.DebtStatusOngoing)
		term := testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 1, 0))

		_, err := svc.PostRecovery(commercial.ID, term.ID, 120, models.PaymentModeCash, "")
		testutil.AssertNoError(t, err)
		_, err = svc.PostRecovery(commercial.ID, term.ID, 180, models.PaymentModeCheck, "")
		testutil.AssertNoError(t, err)

		var got models.Term
		if err := db.First(&got, term.ID).Error; err != nil {
			t.Fatalf("failed to reload term: %v", err)
		}
		if got.PayAmount != 300 {
			t.Errorf("expected pay_amount 300, got %d", got.PayAmount)
		}
		if got.Status != models.TermStatusPaid {
			t.Errorf("expected paid after second posting, got %s", got.Status)
		}

		var gotDebt models.Debt
		if err := db.First(&gotDebt, debt.ID).Error; err != nil {
			t.Fatalf("failed to reload debt: %v", err)
		}
		if gotDebt.Balance != 300 {
			t.Errorf("expected debt balance 300, got %d", gotDebt.Balance)
		}
	})

	t.Run("overpayment_rejected_by_default", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		sale := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 200, 0)
		debt := testutil.CreateTestDebt(t, db, sale.ID, 200, models.DebtStatusOngoing)
		term := testutil.CreateTestTerm(t, db, debt.ID, 200, time.Now().AddDate(0, 1, 0))

		_, err := svc.PostRecovery(commercial.ID, term.ID, 250, models.PaymentModeCash, "")
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")

		// Nothing moved.
		var got models.Debt
		if err := db.First(&got, debt.ID).Error; err != nil {
			t.Fatalf("failed to reload debt: %v", err)
		}
		if got.Balance != 200 {
			t.Errorf("expected untouched balance 200, got %d", got.Balance)
		}
	})

	t.Run("overpayment_allowed_when_configured", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, true)

		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		sale := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 200, 0)
		debt := testutil.CreateTestDebt(t, db, sale.ID, 200, models.DebtStatusOngoing)
		term := testutil.CreateTestTerm(t, db, debt.ID, 200, time.Now().AddDate(0, 1, 0))

		_, err := svc.PostRecovery(commercial.ID, term.ID, 250, models.PaymentModeCash, "")
		testutil.AssertNoError(t, err)

		var got models.Debt
		if err := db.First(&got, debt.ID).Error; err != nil {
			t.Fatalf("failed to reload debt: %v", err)
		}
		if got.Balance != -50 {
			t.Errorf("expected balance -50, got %d", got.Balance)
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		_, err := svc.PostRecovery(1, 1, 0, models.PaymentModeCash, "")
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		_, err := svc.PostRecovery(1, 1, -100, models.PaymentModeCash, "")
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})

	t.Run("unknown_payment_mode", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		_, err := svc.PostRecovery(1, 1, 100, models.PaymentMode("barter"), "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("term_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		_, err := svc.PostRecovery(1, 99999, 100, models.PaymentModeCash, "")
		testutil.AssertAppError(t, err, "TERM_NOT_FOUND")
	})
}

func TestGetRecoveryByID(t *testing.T) {
	t.Run("superuser_sees_any_recovery", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		admin := testutil.CreateTestSuperuser(t, db)
		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		sale := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 300, 0)
		debt := testutil.CreateTestDebt(t, db, sale.ID, 300, models.DebtStatusOngoing)
		term := testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 1, 0))
		rec := testutil.CreateTestRecovery(t, db, term.ID, commercial.ID, 100)

		got, err := svc.GetRecoveryByID(admin, rec.ID)
		testutil.AssertNoError(t, err)
		if got.Amount != 100 {
			t.Errorf("expected amount 100, got %d", got.Amount)
		}
	})

	t.Run("foreign_commercial_cannot_see_it", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		owner := testutil.CreateTestCommercial(t, db)
		other := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		sale := testutil.CreateTestSale(t, db, owner.ID, customer.ID, nil, 300, 0)
		debt := testutil.CreateTestDebt(t, db, sale.ID, 300, models.DebtStatusOngoing)
		term := testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 1, 0))
		rec := testutil.CreateTestRecovery(t, db, term.ID, owner.ID, 100)

		_, err := svc.GetRecoveryByID(other, rec.ID)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}

func TestListRecoveries(t *testing.T) {
	t.Run("filter_by_term", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecoveryService(db, false)

		admin := testutil.CreateTestSuperuser(t, db)
		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)
		sale := testutil.CreateTestSale(t, db, commercial.ID, customer.ID, nil, 600, 0)
		debt := testutil.CreateTestDebt(t, db, sale.ID, 600, models.DebtStatusOngoing)
		term1 := testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 1, 0))
		term2 := testutil.CreateTestTerm(t, db, debt.ID, 300, time.Now().AddDate(0, 2, 0))
		testutil.CreateTestRecovery(t, db, term1.ID, commercial.ID, 50)
		testutil.CreateTestRecovery(t, db, term1.ID, commercial.ID, 70)
		testutil.CreateTestRecovery(t, db, term2.ID, commercial.ID, 90)

		result, err := svc.ListRecoveries(admin, pagination.PageRequest{Page: 1, PageSize: 20}, &term1.ID)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2 recoveries for term, got %d", result.TotalItems)
		}
	})
}
