package domain

import "time"

// Product is a catalog entry. Price is never set directly: it is always
// recomputed as ActualPrice + MarginPrice on create and update.
type Product struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Slug          string    `json:"slug" bson:"slug"`
	Description   string    `json:"description" bson:"description"`
	Price         float64   `json:"price" bson:"price"`
	ActualPrice   float64   `json:"actualPrice" bson:"actual_price"`
	MarginPrice   float64   `json:"marginPrice" bson:"margin_price"`
	StockQuantity int       `json:"stockQuantity" bson:"stock_quantity"`
	Images        []string  `json:"images" bson:"images"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`
}
