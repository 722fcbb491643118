package models

// Invoice statuses.
const (
	InvoiceStatusUnpaid    = "unpaid"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice represents a bill raised from an approved quotation
type Invoice struct {
	Model
	Number      string    `json:"number" gorm:"unique;not null"`
	QuotationID uint      `json:"quotation_id" gorm:"not null;index"`
	Quotation   Quotation `gorm:"foreignKey:QuotationID" json:"quotation"`
	CustomerID  uint      `json:"customer_id" gorm:"not null;index"`
	Customer    Customer  `gorm:"foreignKey:CustomerID" json:"customer"`
	Total       float64   `json:"total" gorm:"not null"`
	Status      string    `json:"status" gorm:"not null;default:unpaid"`
}

type InvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unpaid paid cancelled"`
}
