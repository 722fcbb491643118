package models

// CompanySetting holds the single-row company profile used on rendered
// quotation emails.
type CompanySetting struct {
	Model
	CompanyName string `json:"company_name" gorm:"not null"`
	Address     string `json:"address" gorm:"type:text"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	TaxNumber   string `json:"tax_number"`
}

type CompanySettingRequest struct {
	CompanyName string `json:"company_name" binding:"required" conform:"trim"`
	Address     string `json:"address" conform:"trim"`
	Phone       string `json:"phone" conform:"trim"`
	Email       string `json:"email" binding:"omitempty,email" conform:"trim,lower"`
	TaxNumber   string `json:"tax_number" conform:"trim"`
}
