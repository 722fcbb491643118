package models

// Customer represents a company or person quotations are issued to
type Customer struct {
	Model
	Name      string `json:"name" gorm:"not null" binding:"required,min=2"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address" gorm:"type:text"`
	TaxNumber string `json:"tax_number"`
}

type CustomerRequest struct {
	Name      string `json:"name" binding:"required,min=2" conform:"trim"`
	Email     string `json:"email" binding:"omitempty,email" conform:"trim,lower"`
	Phone     string `json:"phone" conform:"trim"`
	Address   string `json:"address" conform:"trim"`
	TaxNumber string `json:"tax_number" conform:"trim"`
}
