package services

import (
	"fmt"
	"log"
	"time"

	"github.com/muratfirtina/teklif-sistemi-sub002/config"
	"github.com/muratfirtina/teklif-sistemi-sub002/db"
	"github.com/muratfirtina/teklif-sistemi-sub002/mailing"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
)

// QuotationMailer delivers a rendered quotation email. Implemented by
// mailing.Mailgun.
type QuotationMailer interface {
	SendQuotationEmail(to, subject, html string) (string, error)
}

type QuotationService interface {
	CreateQuotation(req *models.QuotationRequest, userID uint) (*models.Quotation, error)
	GetQuotation(id uint) (*models.Quotation, error)
	ListQuotations() ([]models.Quotation, error)
	SendQuotation(id uint, message string) error
	ApproveQuotation(id uint) (*models.ProductionOrder, error)
	RejectQuotation(id uint) error
}

type quotationService struct {
	Config              *config.Config
	quotationRepo       db.QuotationRepository
	productRepo         db.ProductRepository
	productionOrderRepo db.ProductionOrderRepository
	settingsRepo        db.SettingsRepository
	notifications       NotificationService
	mailer              QuotationMailer
}

func NewQuotationService(
	quotationRepo db.QuotationRepository,
	productRepo db.ProductRepository,
	productionOrderRepo db.ProductionOrderRepository,
	settingsRepo db.SettingsRepository,
	notifications NotificationService,
	mailer QuotationMailer,
	conf *config.Config,
) QuotationService {
	return &quotationService{
		Config:              conf,
		quotationRepo:       quotationRepo,
		productRepo:         productRepo,
		productionOrderRepo: productionOrderRepo,
		settingsRepo:        settingsRepo,
		notifications:       notifications,
		mailer:              mailer,
	}
}

// NextDocumentNumber formats a sequential document number like
// QUO-2026-0007 from the count of documents already created this year.
func NextDocumentNumber(prefix string, year int, existing int64) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, existing+1)
}

func (s *quotationService) CreateQuotation(req *models.QuotationRequest, userID uint) (*models.Quotation, error) {
	if err := models.ConformInput(req); err != nil {
		return nil, err
	}

	year := time.Now().Year()
	existing, err := s.quotationRepo.CountCreatedInYear(year)
	if err != nil {
		return nil, fmt.Errorf("numbering quotation: %w", err)
	}

	quotation := &models.Quotation{
		Number:     NextDocumentNumber(s.Config.QuotationPrefix, year, existing),
		CustomerID: req.CustomerID,
		UserID:     userID,
		Status:     models.QuotationStatusDraft,
		Notes:      req.Notes,
	}

	var total float64
	for _, item := range req.Items {
		product, err := s.productRepo.GetProductByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("unknown product %d", item.ProductID)
		}

		// Line price defaults to the catalog price unless overridden.
		unitPrice := item.UnitPrice
		if unitPrice == 0 {
			unitPrice = product.UnitPrice
		}
		lineTotal := unitPrice * float64(item.Quantity)
		total += lineTotal

		quotation.Items = append(quotation.Items, models.QuotationItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
	}
	quotation.Total = total

	if err := s.quotationRepo.CreateQuotation(quotation); err != nil {
		return nil, err
	}
	return s.quotationRepo.GetQuotationByID(quotation.ID)
}

func (s *quotationService) GetQuotation(id uint) (*models.Quotation, error) {
	return s.quotationRepo.GetQuotationByID(id)
}

func (s *quotationService) ListQuotations() ([]models.Quotation, error) {
	return s.quotationRepo.GetAllQuotations()
}

// SendQuotation renders the HTML email for the quotation and delivers it
// to the customer, then marks the quotation sent.
func (s *quotationService) SendQuotation(id uint, message string) error {
	quotation, err := s.quotationRepo.GetQuotationByID(id)
	if err != nil {
		return err
	}
	if quotation.Customer.Email == "" {
		return fmt.Errorf("customer %q has no email address", quotation.Customer.Name)
	}

	company, err := s.settingsRepo.GetCompanySetting()
	if err != nil {
		return fmt.Errorf("loading company settings: %w", err)
	}

	html, err := mailing.RenderQuotationEmail(mailing.QuotationEmailData{
		Quotation: *quotation,
		Company:   *company,
		Message:   message,
	})
	if err != nil {
		return fmt.Errorf("rendering quotation email: %w", err)
	}

	subject := fmt.Sprintf("Quotation %s from %s", quotation.Number, company.CompanyName)
	if _, err := s.mailer.SendQuotationEmail(quotation.Customer.Email, subject, html); err != nil {
		return fmt.Errorf("sending quotation email: %w", err)
	}

	return s.quotationRepo.UpdateQuotationStatus(id, models.QuotationStatusSent)
}

// ApproveQuotation marks the quotation approved, opens a production order
// for it and notifies the production role. Fanout failures are logged,
// not propagated: the approval itself has already succeeded.
func (s *quotationService) ApproveQuotation(id uint) (*models.ProductionOrder, error) {
	quotation, err := s.quotationRepo.GetQuotationByID(id)
	if err != nil {
		return nil, err
	}
	if quotation.Status == models.QuotationStatusApproved {
		return nil, fmt.Errorf("quotation %s is already approved", quotation.Number)
	}

	if err := s.quotationRepo.UpdateQuotationStatus(id, models.QuotationStatusApproved); err != nil {
		return nil, err
	}

	order := &models.ProductionOrder{
		QuotationID: quotation.ID,
		Status:      models.ProductionStatusPending,
	}
	if err := s.productionOrderRepo.CreateProductionOrder(order); err != nil {
		return nil, fmt.Errorf("creating production order: %w", err)
	}

	message := fmt.Sprintf("Quotation %s was approved; production order #%d is waiting", quotation.Number, order.ID)
	related := models.RelatedRef{Type: models.RelatedProductionOrder, ID: order.ID}
	if _, err := s.notifications.FanoutToRole(models.RoleProduction, message, related); err != nil {
		log.Printf("notifying production role: %v", err)
	}

	return order, nil
}

func (s *quotationService) RejectQuotation(id uint) error {
	quotation, err := s.quotationRepo.GetQuotationByID(id)
	if err != nil {
		return err
	}
	if quotation.Status == models.QuotationStatusApproved {
		return fmt.Errorf("approved quotation %s cannot be rejected", quotation.Number)
	}
	return s.quotationRepo.UpdateQuotationStatus(id, models.QuotationStatusRejected)
}
