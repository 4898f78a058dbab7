package entity

import "time"

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentSuccess, PaymentFailed:
		return true
	default:
		return false
	}
}

// IsPending reports whether an admin may still settle the payment.
func (s PaymentStatus) IsPending() bool {
	return s == PaymentPending
}

// IsSettlement reports whether s is a terminal state an admin may set.
func (s PaymentStatus) IsSettlement() bool {
	return s == PaymentSuccess || s == PaymentFailed
}

// Payment is a gateway transaction. Its status is settable only while PENDING.
type Payment struct {
	ID        string        `json:"_id"`
	OrderID   string        `json:"orderId"`
	User      UserRef       `json:"userId"`
	Reference string        `json:"reference"`
	Amount    float64       `json:"amount"`
	Currency  string        `json:"currency"`
	Gateway   string        `json:"gateway"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
