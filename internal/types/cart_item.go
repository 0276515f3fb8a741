package types

import "time"

// CartItem is one line of the cart ledger. The unique index on product_id
// keeps the ledger a mapping from product to line item: adding the same
// product again increments Quantity instead of inserting a second row.
// ProductName/Price/Letter are snapshots taken at add time and are not
// re-synced if the product row changes.
type CartItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductID   uint      `gorm:"uniqueIndex;not null;column:product_id" json:"productId"`
	ProductName string    `gorm:"not null;column:product_name" json:"name"`
	Price       int       `gorm:"not null;column:price" json:"price"`
	Letter      string    `gorm:"size:1;column:letter" json:"letter"`
	Quantity    int       `gorm:"not null;column:quantity" json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (CartItem) TableName() string {
	return "cart_item"
}
