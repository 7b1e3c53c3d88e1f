package models

import "time"

// TermStatus is the closed set of installment states. Paid is terminal;
// the overdue variants are reached either by posting a partial payment
// past the due date or by the daily status sweep.
type TermStatus string

const (
	TermStatusUnpaid           TermStatus = "unpaid"
	TermStatusPartiallyPaid    TermStatus = "partially_paid"
	TermStatusPartiallyOverdue TermStatus = "partially_overdue"
	TermStatusOverdue          TermStatus = "overdue"
	TermStatusPaid             TermStatus = "paid"
)

// Term is one scheduled installment of a Debt. ExceptAmount is the
// expected amount, fixed at schedule generation; PayAmount accumulates
// recovery postings and never decreases. PaymentDate is stamped exactly
// once, when the term becomes fully paid.
type Term struct {
	Base
	DebtID       uint       `gorm:"not null;index" json:"debt_id"`
	TermDate     time.Time  `gorm:"not null" json:"term_date"`
	ExceptAmount int64      `gorm:"type:bigint;not null" json:"except_amount"`
	PayAmount    int64      `gorm:"type:bigint;not null;default:0" json:"pay_amount"`
	PaymentDate  *time.Time `json:"payment_date,omitempty"`
	Status       TermStatus `gorm:"not null;default:'unpaid'" json:"status"`

	Debt       Debt       `gorm:"foreignKey:DebtID" json:"debt,omitempty"`
	Recoveries []Recovery `gorm:"foreignKey:TermID" json:"recoveries,omitempty"`
}

// NextStatus derives the status a term should hold given its amounts
// and due date, evaluated at asOf. It never leaves the paid state.
func (t *Term) NextStatus(asOf time.Time) TermStatus {
	if t.Status == TermStatusPaid {
		return TermStatusPaid
	}
	switch {
	case t.PayAmount >= t.ExceptAmount:
		return TermStatusPaid
	case t.PayAmount > 0 && t.TermDate.Before(truncateDay(asOf)):
		return TermStatusPartiallyOverdue
	case t.PayAmount > 0:
		return TermStatusPartiallyPaid
	}
	return t.Status
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
