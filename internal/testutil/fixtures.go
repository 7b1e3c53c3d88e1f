package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"creditflow/internal/models"
	"creditflow/internal/scope"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an active user with a hashed password and
// unique email, without any roles.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestSuperuser creates a user with the superuser flag set.
func CreateTestSuperuser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := CreateTestUser(t, db)
	if err := db.Model(user).Update("is_superuser", true).Error; err != nil {
		t.Fatalf("failed to promote test superuser: %v", err)
	}
	user.IsSuperuser = true
	return user
}

// CreateTestCommercial creates a user holding the COMMERCIAL role with
// the ownership-scoped list permissions.
func CreateTestCommercial(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := CreateTestUser(t, db)
	role := GetOrCreateCommercialRole(t, db)
	if err := db.Model(user).Association("Roles").Append(role); err != nil {
		t.Fatalf("failed to assign commercial role: %v", err)
	}
	user.Roles = []models.Role{*role}
	return user
}

// GetOrCreateCommercialRole returns the shared COMMERCIAL role with its
// list permissions, creating it on first use.
func GetOrCreateCommercialRole(t *testing.T, db *gorm.DB) *models.Role {
	t.Helper()

	var role models.Role
	err := db.Preload("Permissions").Where("name = ?", models.RoleCommercial).First(&role).Error
	if err == nil {
		return &role
	}
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("failed to look up commercial role: %v", err)
	}

	codes := []string{scope.PermSaleList, scope.PermCustomerList, scope.PermDebtList, scope.PermRecoveryList}
	perms := make([]models.Permission, 0, len(codes))
	for _, code := range codes {
		perms = append(perms, models.Permission{Code: code})
	}

	role = models.Role{Name: models.RoleCommercial, Permissions: perms}
	if err := db.Create(&role).Error; err != nil {
		t.Fatalf("failed to create commercial role: %v", err)
	}
	return &role
}

// CreateTestPortfolio creates an active portfolio owned by the commercial.
func CreateTestPortfolio(t *testing.T, db *gorm.DB, commercialID uint) *models.Portfolio {
	t.Helper()

	n := nextID()
	portfolio := &models.Portfolio{
		Ref:          fmt.Sprintf("PF-%03d", n),
		Name:         fmt.Sprintf("Test Portfolio %d", n),
		CommercialID: &commercialID,
		Active:       true,
	}
	if err := db.Create(portfolio).Error; err != nil {
		t.Fatalf("failed to create test portfolio: %v", err)
	}
	return portfolio
}

// CreateTestCustomer creates a physical-person customer, optionally in
// a portfolio.
func CreateTestCustomer(t *testing.T, db *gorm.DB, portfolioID *uint) *models.Customer {
	t.Helper()

	n := nextID()
	customer := &models.Customer{
		Type:        models.CustomerTypePhysical,
		PortfolioID: portfolioID,
		Email:       fmt.Sprintf("customer%d@test.com", n),
		Phone:       fmt.Sprintf("+3361234%04d", n%10000),
		IsActive:    true,
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	detail := &models.PhysicalPersonDetail{
		CustomerID:       customer.ID,
		FirstName:        "Test",
		LastName:         fmt.Sprintf("Customer%d", n),
		IDDocumentNumber: fmt.Sprintf("DOC-%d", n),
	}
	if err := db.Create(detail).Error; err != nil {
		t.Fatalf("failed to create test customer detail: %v", err)
	}
	customer.PhysicalDetail = detail
	return customer
}

// CreateTestSale creates a pending credit sale (amounts in cents).
func CreateTestSale(t *testing.T, db *gorm.DB, commercialID, customerID uint, portfolioID *uint, totalAmount, deposit int64) *models.CreditSale {
	t.Helper()

	sale := &models.CreditSale{
		CustomerID:   customerID,
		CommercialID: commercialID,
		PortfolioID:  portfolioID,
		SaleDate:     time.Now(),
		TotalAmount:  totalAmount,
		Deposit:      deposit,
		Status:       models.SaleStatusPendingApproval,
	}
	if err := db.Create(sale).Error; err != nil {
		t.Fatalf("failed to create test sale: %v", err)
	}
	return sale
}

// CreateTestDebt creates a debt for the sale with the given balance and
// status, starting today.
func CreateTestDebt(t *testing.T, db *gorm.DB, saleID uint, balance int64, status models.DebtStatus) *models.Debt {
	t.Helper()

	debt := &models.Debt{
		SaleID:        saleID,
		InitAmount:    balance,
		Balance:       balance,
		StartDate:     time.Now().Truncate(24 * time.Hour),
		MonthDuration: 1,
		Status:        status,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

// CreateTestTerm creates an unpaid term for the debt (amount in cents).
func CreateTestTerm(t *testing.T, db *gorm.DB, debtID uint, exceptAmount int64, termDate time.Time) *models.Term {
	t.Helper()

	term := &models.Term{
		DebtID:       debtID,
		TermDate:     termDate,
		ExceptAmount: exceptAmount,
		Status:       models.TermStatusUnpaid,
	}
	if err := db.Create(term).Error; err != nil {
		t.Fatalf("failed to create test term: %v", err)
	}
	return term
}

// CreateTestRecovery inserts a raw recovery row without touching any
// balances. Use the recovery service when balance propagation matters.
func CreateTestRecovery(t *testing.T, db *gorm.DB, termID, commercialID uint, amount int64) *models.Recovery {
	t.Helper()

	recovery := &models.Recovery{
		TermID:       termID,
		CommercialID: commercialID,
		Amount:       amount,
		Date:         time.Now(),
		PaymentMode:  models.PaymentModeCash,
	}
	if err := db.Create(recovery).Error; err != nil {
		t.Fatalf("failed to create test recovery: %v", err)
	}
	return recovery
}
