package db

import (
	"time"

	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"gorm.io/gorm"
)

type QuotationRepository interface {
	CreateQuotation(quotation *models.Quotation) error
	GetQuotationByID(id uint) (*models.Quotation, error)
	GetAllQuotations() ([]models.Quotation, error)
	UpdateQuotationStatus(id uint, status string) error
	CountCreatedInYear(year int) (int64, error)
}

type quotationRepo struct {
	DB *gorm.DB
}

func NewQuotationRepo(db *GormDB) QuotationRepository {
	return &quotationRepo{db.DB}
}

func (r *quotationRepo) CreateQuotation(quotation *models.Quotation) error {
	// Items are created through the association in the same insert.
	return r.DB.Create(quotation).Error
}

func (r *quotationRepo) GetQuotationByID(id uint) (*models.Quotation, error) {
	var quotation models.Quotation
	err := r.DB.Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		First(&quotation, id).Error
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *quotationRepo) GetAllQuotations() ([]models.Quotation, error) {
	var quotations []models.Quotation
	err := r.DB.Preload("Customer").
		Order("created_at DESC").
		Find(&quotations).Error
	if err != nil {
		return nil, err
	}
	return quotations, nil
}

func (r *quotationRepo) UpdateQuotationStatus(id uint, status string) error {
	return r.DB.Model(&models.Quotation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CountCreatedInYear feeds sequential quotation numbering (QUO-YYYY-NNNN).
func (r *quotationRepo) CountCreatedInYear(year int) (int64, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var count int64
	err := r.DB.Model(&models.Quotation{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}
