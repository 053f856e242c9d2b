package models

import "time"

type Order struct {
	ID            int         `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items"`
	TotalCents    int         `json:"totalCents"`
	CreatedAt     time.Time   `json:"createdAt"`
	ModifiedAt    time.Time   `json:"modifiedAt"`
	IsDeleted     bool        `json:"-"`
}

type OrderItem struct {
	MovieID    int    `json:"movieId"`
	MovieTitle string `json:"movieTitle,omitempty"`
	Quantity   int    `json:"quantity"`
	// UnitPriceCents is the movie price at the time of purchase.
	UnitPriceCents int `json:"unitPriceCents"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the supported order states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return true
	}
	return false
}
