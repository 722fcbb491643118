package services

import (
	"fmt"
	"log"
	"time"

	"github.com/muratfirtina/teklif-sistemi-sub002/config"
	"github.com/muratfirtina/teklif-sistemi-sub002/db"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
)

type InvoiceService interface {
	CreateFromQuotation(quotationID uint) (*models.Invoice, error)
	GetInvoice(id uint) (*models.Invoice, error)
	ListInvoices() ([]models.Invoice, error)
	UpdateStatus(id uint, status string) error
}

type invoiceService struct {
	Config        *config.Config
	invoiceRepo   db.InvoiceRepository
	quotationRepo db.QuotationRepository
	notifications NotificationService
}

func NewInvoiceService(invoiceRepo db.InvoiceRepository, quotationRepo db.QuotationRepository, notifications NotificationService, conf *config.Config) InvoiceService {
	return &invoiceService{
		Config:        conf,
		invoiceRepo:   invoiceRepo,
		quotationRepo: quotationRepo,
		notifications: notifications,
	}
}

// CreateFromQuotation raises an invoice for an approved quotation,
// copying the customer and total.
func (s *invoiceService) CreateFromQuotation(quotationID uint) (*models.Invoice, error) {
	quotation, err := s.quotationRepo.GetQuotationByID(quotationID)
	if err != nil {
		return nil, err
	}
	if quotation.Status != models.QuotationStatusApproved {
		return nil, fmt.Errorf("quotation %s must be approved before invoicing", quotation.Number)
	}

	year := time.Now().Year()
	existing, err := s.invoiceRepo.CountCreatedInYear(year)
	if err != nil {
		return nil, fmt.Errorf("numbering invoice: %w", err)
	}

	invoice := &models.Invoice{
		Number:      NextDocumentNumber(s.Config.InvoicePrefix, year, existing),
		QuotationID: quotation.ID,
		CustomerID:  quotation.CustomerID,
		Total:       quotation.Total,
		Status:      models.InvoiceStatusUnpaid,
	}
	if err := s.invoiceRepo.CreateInvoice(invoice); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetInvoiceByID(invoice.ID)
}

func (s *invoiceService) GetInvoice(id uint) (*models.Invoice, error) {
	return s.invoiceRepo.GetInvoiceByID(id)
}

func (s *invoiceService) ListInvoices() ([]models.Invoice, error) {
	return s.invoiceRepo.GetAllInvoices()
}

func (s *invoiceService) UpdateStatus(id uint, status string) error {
	invoice, err := s.invoiceRepo.GetInvoiceByID(id)
	if err != nil {
		return err
	}
	if invoice.Status == models.InvoiceStatusPaid && status != models.InvoiceStatusPaid {
		return fmt.Errorf("paid invoice %s cannot change status", invoice.Number)
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(id, status); err != nil {
		return err
	}

	if status == models.InvoiceStatusPaid {
		message := fmt.Sprintf("Invoice %s was paid (%.2f)", invoice.Number, invoice.Total)
		if _, err := s.notifications.FanoutToRole(models.RoleAdmin, message, models.RelatedRef{}); err != nil {
			log.Printf("notifying admins about paid invoice: %v", err)
		}
	}

	return nil
}
