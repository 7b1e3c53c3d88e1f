package models

// Portfolio is a commercial's book of customers and sales with an
// aggregate outstanding balance. Portfolios are deactivated rather
// than deleted; the balance changes only through recovery postings.
type Portfolio struct {
	Base
	Ref          string `gorm:"uniqueIndex;not null;size:20" json:"ref"`
	Name         string `gorm:"size:150" json:"name"`
	CommercialID *uint  `gorm:"index" json:"commercial_id,omitempty"`
	Description  string `json:"description"`
	Balance      int64  `gorm:"type:bigint;not null;default:0" json:"balance"`
	Active       bool   `gorm:"default:true" json:"active"`

	Commercial *User      `gorm:"foreignKey:CommercialID" json:"commercial,omitempty"`
	Customers  []Customer `gorm:"foreignKey:PortfolioID" json:"customers,omitempty"`
}
