package models

import "time"

// CreditSaleStatus is the closed set of sale states.
type CreditSaleStatus string

const (
	SaleStatusPendingApproval CreditSaleStatus = "pending_approval"
	SaleStatusApproved        CreditSaleStatus = "approved"
	SaleStatusRejected        CreditSaleStatus = "rejected"
	SaleStatusCancelled       CreditSaleStatus = "cancelled"
)

// saleTransitions lists the legal status transitions. A sale is mutable
// only while pending approval; the three outcomes are terminal.
var saleTransitions = map[CreditSaleStatus][]CreditSaleStatus{
	SaleStatusPendingApproval: {SaleStatusApproved, SaleStatusRejected, SaleStatusCancelled},
}

// CanTransitionTo reports whether the move from s to target is legal.
func (s CreditSaleStatus) CanTransitionTo(target CreditSaleStatus) bool {
	for _, allowed := range saleTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known sale status.
func (s CreditSaleStatus) Valid() bool {
	switch s {
	case SaleStatusPendingApproval, SaleStatusApproved, SaleStatusRejected, SaleStatusCancelled:
		return true
	}
	return false
}

// CreditSale records a sale paid on credit. Approving a sale promotes it
// into a Debt (exactly one per sale); an approved sale is immutable
// except through explicit status transitions.
type CreditSale struct {
	Base
	CustomerID   uint             `gorm:"not null;index" json:"customer_id"`
	CommercialID uint             `gorm:"not null;index" json:"commercial_id"`
	PortfolioID  *uint            `gorm:"index" json:"portfolio_id,omitempty"`
	SaleDate     time.Time        `gorm:"not null" json:"sale_date"`
	TotalAmount  int64            `gorm:"type:bigint;not null" json:"total_amount"`
	Deposit      int64            `gorm:"type:bigint;not null;default:0" json:"deposit"`
	Status       CreditSaleStatus `gorm:"not null;default:'pending_approval'" json:"status"`
	ProofDoc     string           `json:"proof_doc,omitempty"`

	Customer   Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Commercial User       `gorm:"foreignKey:CommercialID" json:"commercial,omitempty"`
	Portfolio  *Portfolio `gorm:"foreignKey:PortfolioID" json:"portfolio,omitempty"`
	Debt       *Debt      `gorm:"foreignKey:SaleID" json:"debt,omitempty"`
}

// CreditAmount is the part of the sale financed on credit.
func (s *CreditSale) CreditAmount() int64 {
	return s.TotalAmount - s.Deposit
}
