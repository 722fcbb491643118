package db

import (
	"time"

	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	CreateInvoice(invoice *models.Invoice) error
	GetInvoiceByID(id uint) (*models.Invoice, error)
	GetAllInvoices() ([]models.Invoice, error)
	UpdateInvoiceStatus(id uint, status string) error
	CountCreatedInYear(year int) (int64, error)
}

type invoiceRepo struct {
	DB *gorm.DB
}

func NewInvoiceRepo(db *GormDB) InvoiceRepository {
	return &invoiceRepo{db.DB}
}

func (r *invoiceRepo) CreateInvoice(invoice *models.Invoice) error {
	return r.DB.Create(invoice).Error
}

func (r *invoiceRepo) GetInvoiceByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.DB.Preload("Customer").
		Preload("Quotation").
		Preload("Quotation.Items").
		Preload("Quotation.Items.Product").
		First(&invoice, id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepo) GetAllInvoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.DB.Preload("Customer").
		Order("created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepo) UpdateInvoiceStatus(id uint, status string) error {
	return r.DB.Model(&models.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *invoiceRepo) CountCreatedInYear(year int) (int64, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var count int64
	err := r.DB.Model(&models.Invoice{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}
