package models

// Production order statuses.
const (
	ProductionStatusPending    = "pending"
	ProductionStatusInProgress = "in_progress"
	ProductionStatusCompleted  = "completed"
)

// ProductionOrder represents manufacturing work created from an approved
// quotation and handled by the production role.
type ProductionOrder struct {
	Model
	QuotationID uint      `json:"quotation_id" gorm:"not null;index"`
	Quotation   Quotation `gorm:"foreignKey:QuotationID" json:"quotation"`
	Status      string    `json:"status" gorm:"not null;default:pending"`
	Notes       string    `json:"notes" gorm:"type:text"`
}

type ProductionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed"`
}
