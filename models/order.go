package models

// Order status tags. Transitions are driven by fulfillment; the service only
// validates them when ENFORCE_ORDER_TRANSITIONS is on.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// orderTransitions is the legal fulfillment graph:
// pending -> processing -> shipped -> delivered, with cancellation
// allowed from pending and processing only.
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// IsValidOrderStatus reports whether s is one of the five known tags.
func IsValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// IsValidOrderTransition reports whether from -> to is a legal transition.
func IsValidOrderTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem is a line item copied from the cart at order time. It is a
// snapshot, not a live product reference.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// Order is the primary order record. The item list is immutable after
// creation; only the status and updatedAt fields change.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt"`
}

// CreateOrderRequest is the POST /orders payload. Status is never settable
// here; new orders always start pending.
type CreateOrderRequest struct {
	Items           []OrderItem `json:"items" binding:"required"`
	ShippingAddress *Address    `json:"shippingAddress" binding:"required"`
	PaymentMethod   string      `json:"paymentMethod" binding:"required"`
	Total           float64     `json:"total"`
}

// UpdateOrderStatusRequest is the PUT /orders/:id/status payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
