package models

// Quotation statuses. A quotation moves draft -> sent -> approved/rejected.
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusApproved = "approved"
	QuotationStatusRejected = "rejected"
)

// Quotation represents a priced offer issued to a customer
type Quotation struct {
	Model
	Number     string          `json:"number" gorm:"unique;not null"`
	CustomerID uint            `json:"customer_id" gorm:"not null;index"`
	Customer   Customer        `gorm:"foreignKey:CustomerID" json:"customer"`
	UserID     uint            `json:"user_id" gorm:"not null"`
	Status     string          `json:"status" gorm:"not null;default:draft"`
	Notes      string          `json:"notes" gorm:"type:text"`
	Total      float64         `json:"total" gorm:"not null;default:0"`
	Items      []QuotationItem `gorm:"foreignKey:QuotationID" json:"items"`
}

// QuotationItem is a single priced line on a quotation.
type QuotationItem struct {
	Model
	QuotationID uint    `json:"quotation_id" gorm:"not null;index"`
	ProductID   uint    `json:"product_id" gorm:"not null"`
	Product     Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity    int     `json:"quantity" gorm:"not null"`
	UnitPrice   float64 `json:"unit_price" gorm:"not null"`
	LineTotal   float64 `json:"line_total" gorm:"not null"`
}

type QuotationItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"omitempty,gt=0"`
}

type QuotationRequest struct {
	CustomerID uint                   `json:"customer_id" binding:"required"`
	Notes      string                 `json:"notes" conform:"trim"`
	Items      []QuotationItemRequest `json:"items" binding:"required,min=1,dive"`
}

type SendQuotationRequest struct {
	Message string `json:"message" conform:"trim"`
}
