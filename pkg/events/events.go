package events

// OrderCreated is emitted when a customer places an order.
// This struct is intentionally small and versionable; changes should be additive.
type OrderCreated struct {
	Type       string `json:"type"`
	OrderID    int    `json:"orderId"`
	TotalCents int    `json:"totalCents"`
}
