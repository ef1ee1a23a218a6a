package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Order is a customer purchase. Orders are placed publicly (no account
// required) and managed by admins; new orders always start as pending.
type Order struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	CustomerName string      `json:"customerName" bson:"customer_name"`
	Email        string      `json:"email" bson:"email"`
	Phone        string      `json:"phone" bson:"phone"`
	Address      string      `json:"address" bson:"address"`
	Items        []OrderItem `json:"items" bson:"items"`
	Total        float64     `json:"total" bson:"total"`
	Status       OrderStatus `json:"status" bson:"status"`
	CreatedAt    time.Time   `json:"createdAt" bson:"created_at"`
}
