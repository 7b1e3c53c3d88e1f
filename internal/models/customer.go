package models

import "time"

// CustomerType distinguishes physical persons from moral (legal) persons.
type CustomerType string

const (
	CustomerTypePhysical CustomerType = "physical"
	CustomerTypeMoral    CustomerType = "moral"
)

// Customer is a buyer on credit. Detail fields specific to the customer
// type live in the one-to-one PhysicalPersonDetail / MoralPersonDetail
// records.
type Customer struct {
	Base
	Type        CustomerType `gorm:"not null;default:'physical'" json:"type"`
	PortfolioID *uint        `gorm:"index" json:"portfolio_id,omitempty"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `gorm:"size:30" json:"phone,omitempty"`
	Mobile      string       `gorm:"size:30" json:"mobile,omitempty"`
	Address     string       `json:"address,omitempty"`
	IsActive    bool         `gorm:"default:true" json:"is_active"`

	Portfolio      *Portfolio            `gorm:"foreignKey:PortfolioID" json:"portfolio,omitempty"`
	PhysicalDetail *PhysicalPersonDetail `gorm:"foreignKey:CustomerID" json:"physical_detail,omitempty"`
	MoralDetail    *MoralPersonDetail    `gorm:"foreignKey:CustomerID" json:"moral_detail,omitempty"`
	Sales          []CreditSale          `gorm:"foreignKey:CustomerID" json:"sales,omitempty"`
}

// DisplayName returns a readable name for logs and search results.
// Priority: person name, business name, email, phone.
func (c *Customer) DisplayName() string {
	if pd := c.PhysicalDetail; pd != nil && (pd.FirstName != "" || pd.LastName != "") {
		if pd.FirstName == "" {
			return pd.LastName
		}
		if pd.LastName == "" {
			return pd.FirstName
		}
		return pd.FirstName + " " + pd.LastName
	}
	if md := c.MoralDetail; md != nil && md.BusinessName != "" {
		return md.BusinessName
	}
	if c.Email != "" {
		return c.Email
	}
	if c.Phone != "" {
		return c.Phone
	}
	return "Customer"
}

// PhysicalPersonDetail holds identity fields for physical-person customers.
type PhysicalPersonDetail struct {
	Base
	CustomerID       uint       `gorm:"uniqueIndex;not null" json:"customer_id"`
	FirstName        string     `gorm:"size:150" json:"first_name"`
	LastName         string     `gorm:"size:150" json:"last_name"`
	BirthDay         *time.Time `json:"birth_day,omitempty"`
	BirthPlace       string     `json:"birth_place,omitempty"`
	IDDocumentType   string     `gorm:"size:50" json:"id_document_type,omitempty"`
	IDDocumentNumber string     `gorm:"size:100;uniqueIndex" json:"id_document_number,omitempty"`
	Nationality      string     `gorm:"size:100" json:"nationality,omitempty"`
}

// MoralPersonDetail holds registry fields for moral-person customers.
type MoralPersonDetail struct {
	Base
	CustomerID               uint   `gorm:"uniqueIndex;not null" json:"customer_id"`
	BusinessName             string `gorm:"size:255" json:"business_name"`
	RegistrationNumber       string `gorm:"size:20;uniqueIndex" json:"registration_number,omitempty"`
	LegalForm                string `gorm:"size:100" json:"legal_form,omitempty"`
	RepresentativeFirstName  string `gorm:"size:150" json:"representative_first_name,omitempty"`
	RepresentativeLastName   string `gorm:"size:150" json:"representative_last_name,omitempty"`
	RepresentativeIDDocument string `gorm:"size:100" json:"representative_id_document,omitempty"`
}
