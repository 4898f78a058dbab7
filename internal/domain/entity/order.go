package entity

import "time"

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is read-only in the console; no mutation route exists for it.
type Order struct {
	ID            string      `json:"_id"`
	User          UserRef     `json:"userId"`
	Items         []OrderItem `json:"items"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	Total         float64     `json:"total"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
