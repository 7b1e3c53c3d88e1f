package services

import (
	"time"

	"creditflow/internal/models"
	"creditflow/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// PortfolioServicer defines the contract for portfolio-related business logic.
type PortfolioServicer interface {
	CreatePortfolio(commercialID uint, name, description string) (*models.Portfolio, error)
	GetPortfolioByID(portfolioID uint) (*models.Portfolio, error)
	ListPortfolios(page pagination.PageRequest) (*pagination.PageResponse[models.Portfolio], error)
	FirstActivePortfolio(commercialID uint) (*models.Portfolio, error)
	DeactivatePortfolio(portfolioID uint) (*models.Portfolio, error)
}

// CustomerInput carries the fields for creating or updating a customer,
// including its type-specific detail record.
type CustomerInput struct {
	Type           models.CustomerType
	PortfolioID    *uint
	Email          string
	Phone          string
	Mobile         string
	Address        string
	PhysicalDetail *models.PhysicalPersonDetail
	MoralDetail    *models.MoralPersonDetail
}

// CustomerServicer defines the contract for customer-related business logic.
type CustomerServicer interface {
	CreateCustomer(input CustomerInput) (*models.Customer, error)
	GetCustomerByID(viewer *models.User, customerID uint) (*models.Customer, error)
	ListCustomers(viewer *models.User, page pagination.PageRequest) (*pagination.PageResponse[models.Customer], error)
	UpdateCustomer(customerID uint, input CustomerInput) (*models.Customer, error)
	DeactivateCustomer(customerID uint) (*models.Customer, error)
}

// SaleFilter holds optional filter parameters for listing credit sales.
type SaleFilter struct {
	Status      *models.CreditSaleStatus
	CustomerID  *uint
	PortfolioID *uint
	FromDate    *time.Time
	ToDate      *time.Time
}

// PromotionOptions tunes the debt spawned when a sale is approved.
// Zero values fall back to: start today, one month, undefined mode.
type PromotionOptions struct {
	StartDate      *time.Time
	MonthDuration  int
	RegulationMode string
}

// SaleServicer defines the contract for credit sales, including the
// sale-to-debt promotion state machine.
type SaleServicer interface {
	CreateSale(commercialID, customerID uint, portfolioID *uint, totalAmount, deposit int64, proofDoc string) (*models.CreditSale, error)
	GetSaleByID(viewer *models.User, saleID uint) (*models.CreditSale, error)
	ListSales(viewer *models.User, page pagination.PageRequest, filter SaleFilter) (*pagination.PageResponse[models.CreditSale], error)
	UpdateSaleStatus(saleID uint, newStatus models.CreditSaleStatus, opts PromotionOptions) (*models.CreditSale, error)
}

// DebtServicer defines the read-side contract over debts and terms.
type DebtServicer interface {
	GetDebtByID(viewer *models.User, debtID uint) (*models.Debt, error)
	ListDebts(viewer *models.User, page pagination.PageRequest, status *models.DebtStatus) (*pagination.PageResponse[models.Debt], error)
	GetTermByID(viewer *models.User, termID uint) (*models.Term, error)
	ListDebtTerms(viewer *models.User, debtID uint) ([]models.Term, error)
}

// RecoveryServicer defines the contract for the recovery posting engine.
type RecoveryServicer interface {
	PostRecovery(commercialID, termID uint, amount int64, paymentMode models.PaymentMode, receipt string) (*models.Recovery, error)
	GetRecoveryByID(viewer *models.User, recoveryID uint) (*models.Recovery, error)
	ListRecoveries(viewer *models.User, page pagination.PageRequest, termID *uint) (*pagination.PageResponse[models.Recovery], error)
}

// SweepResult reports how many rows a status sweep advanced.
type SweepResult struct {
	TermsUpdated int64 `json:"terms_updated"`
	DebtsUpdated int64 `json:"debts_updated"`
}

// SweepServicer defines the contract for the calendar-driven status sweep.
type SweepServicer interface {
	RunStatusSweep(asOf time.Time) (*SweepResult, error)
}

// SearchHit is one federated search result.
type SearchHit struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Type     string `json:"type"`
	Status   string `json:"status,omitempty"`
}

// SearchResults groups federated search hits per entity.
type SearchResults struct {
	Sales     []SearchHit `json:"sales"`
	Debts     []SearchHit `json:"debts"`
	Customers []SearchHit `json:"customers"`
}

// SearchServicer defines the contract for scope-aware federated search.
type SearchServicer interface {
	Global(viewer *models.User, query string) (*SearchResults, error)
}

// DashboardStats aggregates the receivables position visible to a user.
type DashboardStats struct {
	TotalOutstanding int64                             `json:"total_outstanding"`
	TotalRecovered   int64                             `json:"total_recovered"`
	DebtsByStatus    map[models.DebtStatus]int64       `json:"debts_by_status"`
	SalesByStatus    map[models.CreditSaleStatus]int64 `json:"sales_by_status"`
	OverdueTerms     int64                             `json:"overdue_terms"`
}

// StatsServicer defines the contract for scope-aware dashboard stats.
type StatsServicer interface {
	Dashboard(viewer *models.User) (*DashboardStats, error)
}

// HistoryServicer defines the contract for append-only audit logging.
type HistoryServicer interface {
	Record(actorID uint, action, entityType string, entityID uint, ipAddress string, changes map[string]interface{})
	ListEntityHistory(entityType string, entityID uint, page pagination.PageRequest) (*pagination.PageResponse[models.History], error)
}
