package models

import "time"

// DebtStatus is the closed set of debt states. Paid is terminal.
type DebtStatus string

const (
	DebtStatusNotStarted DebtStatus = "not_started"
	DebtStatusOngoing    DebtStatus = "ongoing"
	DebtStatusOverdue    DebtStatus = "overdue"
	DebtStatusPaid       DebtStatus = "paid"
)

// Valid reports whether s is a known debt status.
func (s DebtStatus) Valid() bool {
	switch s {
	case DebtStatusNotStarted, DebtStatusOngoing, DebtStatusOverdue, DebtStatusPaid:
		return true
	}
	return false
}

// daysPerMonth approximates a calendar month for deadline arithmetic.
const daysPerMonth = 30.44

// Debt is the receivable spawned from one approved credit sale.
// InitAmount is fixed at creation; Balance only ever decreases, and
// only through recovery postings. CloseDate is stamped exactly once,
// when the balance reaches zero.
type Debt struct {
	Base
	SaleID         uint       `gorm:"uniqueIndex;not null" json:"sale_id"`
	InitAmount     int64      `gorm:"type:bigint;not null" json:"init_amount"`
	Balance        int64      `gorm:"type:bigint;not null" json:"balance"`
	StartDate      time.Time  `gorm:"not null" json:"start_date"`
	CloseDate      *time.Time `json:"close_date,omitempty"`
	MonthlyPayment int64      `gorm:"type:bigint;not null;default:0" json:"monthly_payment"`
	MonthDuration  int        `gorm:"not null;default:1" json:"month_duration"`
	RegulationMode string     `gorm:"size:50" json:"regulation_mode"`
	Status         DebtStatus `gorm:"not null;default:'not_started'" json:"status"`

	Sale  CreditSale `gorm:"foreignKey:SaleID" json:"sale,omitempty"`
	Terms []Term     `gorm:"foreignKey:DebtID" json:"terms,omitempty"`
}

// Deadline returns the theoretical settlement date:
// start_date + round(month_duration * 30.44 days).
func (d *Debt) Deadline() time.Time {
	days := int(float64(d.MonthDuration)*daysPerMonth + 0.5)
	return d.StartDate.AddDate(0, 0, days)
}

// IsSettled reports whether the outstanding balance has reached zero.
func (d *Debt) IsSettled() bool {
	return d.Balance <= 0
}
