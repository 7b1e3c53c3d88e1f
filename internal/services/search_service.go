package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "creditflow/internal/errors"
	"creditflow/internal/models"
	"creditflow/internal/scope"
)

// searchHitLimit caps results per entity bucket.
const searchHitLimit = 5

// searchService provides federated search over sales, debts, and
// customers. Every query runs through the scope resolver so search
// never widens what a user can see.
type searchService struct {
	db *gorm.DB
}

// NewSearchService creates a new SearchServicer.
func NewSearchService(db *gorm.DB) SearchServicer {
	return &searchService{db: db}
}

// Global searches each entity for the query, scope-filtered, at most
// five hits per bucket. Queries shorter than two characters return
// empty buckets.
func (s *searchService) Global(viewer *models.User, query string) (*SearchResults, error) {
	results := &SearchResults{
		Sales:     []SearchHit{},
		Debts:     []SearchHit{},
		Customers: []SearchHit{},
	}

	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return results, nil
	}
	pattern := "%" + query + "%"
	resolver := scope.NewResolver(viewer)

	var sales []models.CreditSale
	err := s.db.Scopes(resolver.Sales()).
		Joins("Customer").
		Where("credit_sales.proof_doc LIKE ? OR Customer.email LIKE ? OR Customer.phone LIKE ?", pattern, pattern, pattern).
		Limit(searchHitLimit).
		Find(&sales).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range sales {
		results.Sales = append(results.Sales, SearchHit{
			ID:       sales[i].ID,
			Title:    fmt.Sprintf("Sale #%d", sales[i].ID),
			Subtitle: fmt.Sprintf("Amount: %s", formatCents(sales[i].TotalAmount)),
			Type:     "sale",
			Status:   string(sales[i].Status),
		})
	}

	var debts []models.Debt
	err = s.db.Scopes(resolver.Debts()).
		Joins("Sale").Joins("Sale.Customer").
		Where("Sale__Customer.email LIKE ? OR Sale__Customer.phone LIKE ?", pattern, pattern).
		Limit(searchHitLimit).
		Find(&debts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range debts {
		results.Debts = append(results.Debts, SearchHit{
			ID:       debts[i].ID,
			Title:    fmt.Sprintf("Debt #%d", debts[i].ID),
			Subtitle: fmt.Sprintf("Outstanding: %s", formatCents(debts[i].Balance)),
			Type:     "debt",
			Status:   string(debts[i].Status),
		})
	}

	var customers []models.Customer
	err = s.db.Scopes(resolver.Customers()).
		Preload("PhysicalDetail").Preload("MoralDetail").
		Where(
			s.db.Where("customers.email LIKE ?", pattern).
				Or("customers.phone LIKE ?", pattern).
				Or("customers.id IN (SELECT customer_id FROM physical_person_details WHERE first_name LIKE ? OR last_name LIKE ?)", pattern, pattern).
				Or("customers.id IN (SELECT customer_id FROM moral_person_details WHERE business_name LIKE ?)", pattern),
		).
		Limit(searchHitLimit).
		Find(&customers).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range customers {
		results.Customers = append(results.Customers, SearchHit{
			ID:       customers[i].ID,
			Title:    customers[i].DisplayName(),
			Subtitle: customers[i].Email,
			Type:     "customer",
		})
	}

	return results, nil
}

// formatCents renders an int64 cent amount as a decimal string.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
