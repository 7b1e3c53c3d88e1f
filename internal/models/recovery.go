package models

import "time"

// PaymentMode is how a recovery payment was collected.
type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeCreditCard   PaymentMode = "credit_card"
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
	PaymentModeCheck        PaymentMode = "check"
	PaymentModeOther        PaymentMode = "other"
)

// Valid reports whether m is a known payment mode.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeCreditCard, PaymentModeBankTransfer, PaymentModeCheck, PaymentModeOther:
		return true
	}
	return false
}

// Recovery is an immutable payment event against one term. Creating a
// recovery is the only operation that moves Term.PayAmount, Debt.Balance
// and Portfolio.Balance.
type Recovery struct {
	Base
	TermID       uint        `gorm:"not null;index" json:"term_id"`
	CommercialID uint        `gorm:"not null;index" json:"commercial_id"`
	Amount       int64       `gorm:"type:bigint;not null" json:"amount"`
	Date         time.Time   `gorm:"not null" json:"date"`
	PaymentMode  PaymentMode `gorm:"not null;default:'cash'" json:"payment_mode"`
	Receipt      string      `json:"receipt,omitempty"`

	Term       Term `gorm:"foreignKey:TermID" json:"term,omitempty"`
	Commercial User `gorm:"foreignKey:CommercialID" json:"commercial,omitempty"`
}
