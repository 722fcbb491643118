package models

// Product represents a sellable item tracked in inventory
type Product struct {
	Model
	Name          string  `json:"name" gorm:"not null" binding:"required,min=2"`
	Code          string  `json:"code" gorm:"unique;not null"`
	Description   string  `json:"description" gorm:"type:text"`
	UnitPrice     float64 `json:"unit_price" gorm:"not null"`
	StockQuantity int     `json:"stock_quantity" gorm:"not null;default:0"`
	LowStockLevel int     `json:"low_stock_level" gorm:"not null;default:5"`
}

// StockMovement records a single inventory adjustment for a product.
// Quantity is positive for stock in and negative for stock out.
type StockMovement struct {
	Model
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Product   Product `gorm:"foreignKey:ProductID" json:"-"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Reason    string  `json:"reason"`
	UserID    uint    `json:"user_id"`
}

type ProductRequest struct {
	Name          string  `json:"name" binding:"required,min=2" conform:"trim"`
	Code          string  `json:"code" binding:"required" conform:"trim,upper"`
	Description   string  `json:"description" conform:"trim"`
	UnitPrice     float64 `json:"unit_price" binding:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" binding:"gte=0"`
	LowStockLevel int     `json:"low_stock_level" binding:"gte=0"`
}

type StockAdjustRequest struct {
	Quantity int    `json:"quantity" binding:"required"`
	Reason   string `json:"reason" conform:"trim"`
}
