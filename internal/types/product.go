package types

// Product is a catalog entry. Rows are seeded at startup and read-only
// from the API; prices are in minor currency units.
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:200;not null;column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	Price       int    `gorm:"not null;column:price" json:"price"`
	Letter      string `gorm:"size:1;column:letter" json:"letter"`
}

func (Product) TableName() string {
	return "product"
}
