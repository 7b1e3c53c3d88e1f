package services

import (
	"testing"

	"creditflow/internal/models"
	"creditflow/internal/pagination"
	"creditflow/internal/testutil"
)

func TestCreateCustomer(t *testing.T) {
	t.Run("physical_person_with_detail", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCustomerService(db)

		customer, err := svc.CreateCustomer(CustomerInput{
			Type:  models.CustomerTypePhysical,
			Email: "jane@example.com",
			Phone: "+33612345678",
			PhysicalDetail: &models.PhysicalPersonDetail{
				FirstName: "Jane",
				LastName:  "Martin",
			},
		})
		testutil.AssertNoError(t, err)
		if customer.PhysicalDetail == nil || customer.PhysicalDetail.LastName != "Martin" {
			t.Error("expected detail record attached")
		}
		if !customer.IsActive {
			t.Error("expected new customer to be active")
		}

		var detail models.PhysicalPersonDetail
		if err := db.Where("customer_id = ?", customer.ID).First(&detail).Error; err != nil {
			t.Fatalf("detail row not persisted: %v", err)
		}
	})

	t.Run("moral_person_with_detail", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCustomerService(db)

		customer, err := svc.CreateCustomer(CustomerInput{
			Type:  models.CustomerTypeMoral,
			Email: "contact@acme.example.com",
			MoralDetail: &models.MoralPersonDetail{
				BusinessName:       "ACME SARL",
				RegistrationNumber: "RC-12345",
			},
		})
		testutil.AssertNoError(t, err)
		if customer.MoralDetail == nil || customer.MoralDetail.BusinessName != "ACME SARL" {
			t.Error("expected moral detail attached")
		}
	})

	t.Run("unknown_type_is_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCustomerService(db)

		_, err := svc.CreateCustomer(CustomerInput{Type: "alien"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetCustomerByID(t *testing.T) {
	t.Run("commercial_sees_portfolio_customers", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCustomerService(db)

		commercial := testutil.CreateTestCommercial(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, commercial.ID)
		customer := testutil.CreateTestCustomer(t, db, &portfolio.ID)

		got, err := svc.GetCustomerByID(commercial, customer.ID)
		testutil.AssertNoError(t, err)
		if got.PhysicalDetail == nil {
			t.Error("expected physical detail preloaded")
		}
	})

	t.Run("customer_outside_portfolio_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCustomerService(db)

		commercial := testutil.CreateTestCommercial(t, db)
		customer := testutil.CreateTestCustomer(t, db, nil)

		_, err := svc.GetCustomerByID(commercial, customer.ID)
		testutil.AssertAppError(t, err, "CUSTOMER_NOT_FOUND")
	})
}

func TestUpdateCustomer(t *testing.T) {
	t.Run("updates_contact_fields_and_detail", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCustomerService(db)

		customer := testutil.CreateTestCustomer(t, db, nil)

		updated, err := svc.UpdateCustomer(customer.ID, CustomerInput{
			Type:  models.CustomerTypePhysical,
			Email: "new@example.com",
			Phone: "+33699999999",
			PhysicalDetail: &models.PhysicalPersonDetail{
				FirstName: "Renamed",
				LastName:  "Person",
			},
		})
		testutil.AssertNoError(t, err)
		if updated.Email != "new@example.com" {
			t.Errorf("expected updated email, got %s", updated.Email)
		}
		if updated.PhysicalDetail == nil || updated.PhysicalDetail.FirstName != "Renamed" {
			t.Error("expected detail updated in place")
		}

		var count int64
		db.Model(&models.PhysicalPersonDetail{}).Where("customer_id = ?", customer.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected a single detail row, got %d", count)
		}
	})

	t.Run("unknown_customer_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCustomerService(db)

		_, err := svc.UpdateCustomer(9999, CustomerInput{Type: models.CustomerTypePhysical})
		testutil.AssertAppError(t, err, "CUSTOMER_NOT_FOUND")
	})
}

func TestDeactivateCustomer(t *testing.T) {
	t.Run("marks_inactive_and_is_idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCustomerService(db)

		customer := testutil.CreateTestCustomer(t, db, nil)

		got, err := svc.DeactivateCustomer(customer.ID)
		testutil.AssertNoError(t, err)
		if got.IsActive {
			t.Error("expected customer inactive")
		}

		again, err := svc.DeactivateCustomer(customer.ID)
		testutil.AssertNoError(t, err)
		if again.IsActive {
			t.Error("expected customer to stay inactive")
		}
	})
}

func TestListCustomers(t *testing.T) {
	t.Run("scopes_to_the_viewer_portfolios", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCustomerService(db)

		commercial := testutil.CreateTestCommercial(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, commercial.ID)
		mine := testutil.CreateTestCustomer(t, db, &portfolio.ID)
		testutil.CreateTestCustomer(t, db, nil)

		result, err := svc.ListCustomers(commercial, pagination.PageRequest{Page: 1, PageSize: 20})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 1 || result.Data[0].ID != mine.ID {
			t.Errorf("expected only the portfolio customer, got %d rows", len(result.Data))
		}
	})

	t.Run("superuser_sees_everything", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCustomerService(db)

		superuser := testutil.CreateTestSuperuser(t, db)
		testutil.CreateTestCustomer(t, db, nil)
		testutil.CreateTestCustomer(t, db, nil)

		result, err := svc.ListCustomers(superuser, pagination.PageRequest{Page: 1, PageSize: 20})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2 customers, got %d", result.TotalItems)
		}
	})
}
