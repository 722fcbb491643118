package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/muratfirtina/teklif-sistemi-sub002/config"
	"github.com/muratfirtina/teklif-sistemi-sub002/db"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testStore wires every service against a fresh in-memory database so
// workflow tests exercise the real repositories.
type testStore struct {
	conf *config.Config

	authRepo         db.AuthRepository
	customerRepo     db.CustomerRepository
	productRepo      db.ProductRepository
	notificationRepo db.NotificationRepository

	notifications NotificationService
	products      ProductService
	quotations    QuotationService
	production    ProductionOrderService
	invoices      InvoiceService

	mailer *recordingMailer
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	To      string
	Subject string
	HTML    string
}

func (m *recordingMailer) SendQuotationEmail(to, subject, html string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, HTML: html})
	return fmt.Sprintf("msg-%d", len(m.sent)), nil
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	wrapped := &db.GormDB{DB: gdb}

	conf := &config.Config{
		QuotationPrefix: "QUO",
		InvoicePrefix:   "INV",
		LowStockDefault: 5,
	}

	s := &testStore{
		conf:             conf,
		authRepo:         db.NewAuthRepo(wrapped),
		customerRepo:     db.NewCustomerRepo(wrapped),
		productRepo:      db.NewProductRepo(wrapped),
		notificationRepo: db.NewNotificationRepo(wrapped),
		mailer:           &recordingMailer{},
	}

	quotationRepo := db.NewQuotationRepo(wrapped)
	productionOrderRepo := db.NewProductionOrderRepo(wrapped)
	invoiceRepo := db.NewInvoiceRepo(wrapped)
	settingsRepo := db.NewSettingsRepo(wrapped)

	s.notifications = NewNotificationService(s.notificationRepo, s.authRepo)
	s.products = NewProductService(s.productRepo, s.notifications, conf)
	s.quotations = NewQuotationService(quotationRepo, s.productRepo, productionOrderRepo, settingsRepo, s.notifications, s.mailer, conf)
	s.production = NewProductionOrderService(productionOrderRepo, s.notifications)
	s.invoices = NewInvoiceService(invoiceRepo, quotationRepo, s.notifications, conf)

	return s
}

func (s *testStore) mustCreateUser(t *testing.T, fullname, email, role string) *models.User {
	t.Helper()
	r, err := s.authRepo.FindRoleByName(role)
	if err != nil {
		t.Fatalf("FindRoleByName(%q): %v", role, err)
	}
	user, err := s.authRepo.CreateUser(&models.User{
		Fullname: fullname, Email: email,
		HashedPassword: "x", IsActive: true, RoleID: r.ID,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func (s *testStore) mustCreateCustomer(t *testing.T, name, email string) *models.Customer {
	t.Helper()
	customer := &models.Customer{Name: name, Email: email}
	if err := s.customerRepo.CreateCustomer(customer); err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	return customer
}

func (s *testStore) mustCreateProduct(t *testing.T, name, code string, price float64, stock int) *models.Product {
	t.Helper()
	product, err := s.products.CreateProduct(&models.ProductRequest{
		Name: name, Code: code, UnitPrice: price, StockQuantity: stock,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	return product
}

func TestCreateQuotationNumberingAndPricing(t *testing.T) {
	s := newTestStore(t)
	owner := s.mustCreateUser(t, "Sales Rep", "sales@example.com", models.RoleUser)
	customer := s.mustCreateCustomer(t, "Acme Ltd", "acme@example.com")
	product := s.mustCreateProduct(t, "Steel Bracket", "SB-01", 25.0, 100)

	first, err := s.quotations.CreateQuotation(&models.QuotationRequest{
		CustomerID: customer.ID,
		Items: []models.QuotationItemRequest{
			{ProductID: product.ID, Quantity: 4},
			{ProductID: product.ID, Quantity: 2, UnitPrice: 30},
		},
	}, owner.ID)
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	year := time.Now().Year()
	if want := fmt.Sprintf("QUO-%d-0001", year); first.Number != want {
		t.Errorf("expected number %q, got %q", want, first.Number)
	}
	// 4 at the catalog price plus 2 at the override.
	if want := 4*25.0 + 2*30.0; first.Total != want {
		t.Errorf("expected total %.2f, got %.2f", want, first.Total)
	}
	if first.Status != models.QuotationStatusDraft {
		t.Errorf("expected draft status, got %q", first.Status)
	}

	second, err := s.quotations.CreateQuotation(&models.QuotationRequest{
		CustomerID: customer.ID,
		Items:      []models.QuotationItemRequest{{ProductID: product.ID, Quantity: 1}},
	}, owner.ID)
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}
	if want := fmt.Sprintf("QUO-%d-0002", year); second.Number != want {
		t.Errorf("expected number %q, got %q", want, second.Number)
	}
}

func TestSendQuotation(t *testing.T) {
	s := newTestStore(t)
	owner := s.mustCreateUser(t, "Sales Rep", "sales@example.com", models.RoleUser)
	customer := s.mustCreateCustomer(t, "Acme Ltd", "acme@example.com")
	product := s.mustCreateProduct(t, "Steel Bracket", "SB-01", 25.0, 100)

	quotation, err := s.quotations.CreateQuotation(&models.QuotationRequest{
		CustomerID: customer.ID,
		Items:      []models.QuotationItemRequest{{ProductID: product.ID, Quantity: 2}},
	}, owner.ID)
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	if err := s.quotations.SendQuotation(quotation.ID, "Our latest offer."); err != nil {
		t.Fatalf("SendQuotation: %v", err)
	}

	if len(s.mailer.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(s.mailer.sent))
	}
	mail := s.mailer.sent[0]
	if mail.To != "acme@example.com" {
		t.Errorf("expected email to customer, got %q", mail.To)
	}
	if !strings.Contains(mail.Subject, quotation.Number) {
		t.Errorf("expected subject to carry the quotation number, got %q", mail.Subject)
	}
	if !strings.Contains(mail.HTML, "Our latest offer.") {
		t.Error("expected the custom message in the email body")
	}

	sent, err := s.quotations.GetQuotation(quotation.ID)
	if err != nil {
		t.Fatalf("GetQuotation: %v", err)
	}
	if sent.Status != models.QuotationStatusSent {
		t.Errorf("expected sent status, got %q", sent.Status)
	}
}

func TestSendQuotationWithoutCustomerEmail(t *testing.T) {
	s := newTestStore(t)
	owner := s.mustCreateUser(t, "Sales Rep", "sales@example.com", models.RoleUser)
	customer := s.mustCreateCustomer(t, "Walk-in", "")
	product := s.mustCreateProduct(t, "Steel Bracket", "SB-01", 25.0, 100)

	quotation, err := s.quotations.CreateQuotation(&models.QuotationRequest{
		CustomerID: customer.ID,
		Items:      []models.QuotationItemRequest{{ProductID: product.ID, Quantity: 1}},
	}, owner.ID)
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	if err := s.quotations.SendQuotation(quotation.ID, ""); err == nil {
		t.Fatal("expected an error when the customer has no email")
	}
	if len(s.mailer.sent) != 0 {
		t.Errorf("expected no email, got %d", len(s.mailer.sent))
	}
}

func TestApproveQuotationOpensProductionOrderAndNotifies(t *testing.T) {
	s := newTestStore(t)
	owner := s.mustCreateUser(t, "Sales Rep", "sales@example.com", models.RoleUser)
	workerOne := s.mustCreateUser(t, "Worker One", "w1@example.com", models.RoleProduction)
	workerTwo := s.mustCreateUser(t, "Worker Two", "w2@example.com", models.RoleProduction)
	customer := s.mustCreateCustomer(t, "Acme Ltd", "acme@example.com")
	product := s.mustCreateProduct(t, "Steel Bracket", "SB-01", 25.0, 100)

	quotation, err := s.quotations.CreateQuotation(&models.QuotationRequest{
		CustomerID: customer.ID,
		Items:      []models.QuotationItemRequest{{ProductID: product.ID, Quantity: 3}},
	}, owner.ID)
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	order, err := s.quotations.ApproveQuotation(quotation.ID)
	if err != nil {
		t.Fatalf("ApproveQuotation: %v", err)
	}
	if order.QuotationID != quotation.ID {
		t.Errorf("order references quotation %d, expected %d", order.QuotationID, quotation.ID)
	}
	if order.Status != models.ProductionStatusPending {
		t.Errorf("expected pending order, got %q", order.Status)
	}

	for _, worker := range []*models.User{workerOne, workerTwo} {
		unread, err := s.notifications.ListUnread(worker.ID, 10)
		if err != nil {
			t.Fatalf("ListUnread: %v", err)
		}
		if len(unread) != 1 {
			t.Fatalf("expected 1 notification for %s, got %d", worker.Fullname, len(unread))
		}
		if !strings.Contains(unread[0].Message, quotation.Number) {
			t.Errorf("expected the quotation number in the message, got %q", unread[0].Message)
		}
		if want := fmt.Sprintf("/production-orders/%d", order.ID); unread[0].Link != want {
			t.Errorf("expected link %q, got %q", want, unread[0].Link)
		}
	}

	// The sales user is not on the production role and gets nothing.
	count, err := s.notifications.CountUnread(owner.ID)
	if err != nil {
		t.Fatalf("CountUnread: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no notifications for the owner, got %d", count)
	}

	if _, err := s.quotations.ApproveQuotation(quotation.ID); err == nil {
		t.Fatal("expected an error approving an already-approved quotation")
	}
	if err := s.quotations.RejectQuotation(quotation.ID); err == nil {
		t.Fatal("expected an error rejecting an approved quotation")
	}
}

func TestProductionOrderCompletionNotifiesOwner(t *testing.T) {
	s := newTestStore(t)
	owner := s.mustCreateUser(t, "Sales Rep", "sales@example.com", models.RoleUser)
	customer := s.mustCreateCustomer(t, "Acme Ltd", "acme@example.com")
	product := s.mustCreateProduct(t, "Steel Bracket", "SB-01", 25.0, 100)

	quotation, err := s.quotations.CreateQuotation(&models.QuotationRequest{
		CustomerID: customer.ID,
		Items:      []models.QuotationItemRequest{{ProductID: product.ID, Quantity: 3}},
	}, owner.ID)
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}
	order, err := s.quotations.ApproveQuotation(quotation.ID)
	if err != nil {
		t.Fatalf("ApproveQuotation: %v", err)
	}

	if err := s.production.UpdateStatus(order.ID, models.ProductionStatusInProgress); err != nil {
		t.Fatalf("UpdateStatus to in progress: %v", err)
	}
	if err := s.production.UpdateStatus(order.ID, models.ProductionStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus to completed: %v", err)
	}

	unread, err := s.notifications.ListUnread(owner.ID, 10)
	if err != nil {
		t.Fatalf("ListUnread: %v", err)
	}
	if len(unread) != 1 {
		t.Fatalf("expected 1 notification for the owner, got %d", len(unread))
	}
	if !strings.Contains(unread[0].Message, "completed") {
		t.Errorf("expected a completion message, got %q", unread[0].Message)
	}

	// A completed order is terminal.
	if err := s.production.UpdateStatus(order.ID, models.ProductionStatusInProgress); err == nil {
		t.Fatal("expected an error reopening a completed order")
	}
}

func TestInvoiceLifecycle(t *testing.T) {
	s := newTestStore(t)
	owner := s.mustCreateUser(t, "Sales Rep", "sales@example.com", models.RoleUser)
	admin := s.mustCreateUser(t, "Boss", "boss@example.com", models.RoleAdmin)
	customer := s.mustCreateCustomer(t, "Acme Ltd", "acme@example.com")
	product := s.mustCreateProduct(t, "Steel Bracket", "SB-01", 25.0, 100)

	quotation, err := s.quotations.CreateQuotation(&models.QuotationRequest{
		CustomerID: customer.ID,
		Items:      []models.QuotationItemRequest{{ProductID: product.ID, Quantity: 4}},
	}, owner.ID)
	if err != nil {
		t.Fatalf("CreateQuotation: %v", err)
	}

	// Invoicing requires an approved quotation.
	if _, err := s.invoices.CreateFromQuotation(quotation.ID); err == nil {
		t.Fatal("expected an error invoicing a draft quotation")
	}

	if _, err := s.quotations.ApproveQuotation(quotation.ID); err != nil {
		t.Fatalf("ApproveQuotation: %v", err)
	}

	invoice, err := s.invoices.CreateFromQuotation(quotation.ID)
	if err != nil {
		t.Fatalf("CreateFromQuotation: %v", err)
	}
	year := time.Now().Year()
	if want := fmt.Sprintf("INV-%d-0001", year); invoice.Number != want {
		t.Errorf("expected number %q, got %q", want, invoice.Number)
	}
	if invoice.Total != quotation.Total {
		t.Errorf("expected total %.2f copied from the quotation, got %.2f", quotation.Total, invoice.Total)
	}
	if invoice.Status != models.InvoiceStatusUnpaid {
		t.Errorf("expected unpaid status, got %q", invoice.Status)
	}

	if err := s.invoices.UpdateStatus(invoice.ID, models.InvoiceStatusPaid); err != nil {
		t.Fatalf("UpdateStatus to paid: %v", err)
	}

	unread, err := s.notifications.ListUnread(admin.ID, 10)
	if err != nil {
		t.Fatalf("ListUnread: %v", err)
	}
	if len(unread) != 1 {
		t.Fatalf("expected 1 notification for the admin, got %d", len(unread))
	}
	if !strings.Contains(unread[0].Message, invoice.Number) {
		t.Errorf("expected the invoice number in the message, got %q", unread[0].Message)
	}

	// Paid is terminal.
	if err := s.invoices.UpdateStatus(invoice.ID, models.InvoiceStatusCancelled); err == nil {
		t.Fatal("expected an error cancelling a paid invoice")
	}
}

func TestAdjustStockLowStockWarning(t *testing.T) {
	s := newTestStore(t)
	admin := s.mustCreateUser(t, "Boss", "boss@example.com", models.RoleAdmin)
	clerk := s.mustCreateUser(t, "Clerk", "clerk@example.com", models.RoleUser)
	product := s.mustCreateProduct(t, "Steel Bracket", "SB-01", 25.0, 10)

	// Draw down to the low-stock level.
	updated, err := s.products.AdjustStock(product.ID, &models.StockAdjustRequest{
		Quantity: -6, Reason: "shipment",
	}, clerk.ID)
	if err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	if updated.StockQuantity != 4 {
		t.Errorf("expected stock 4, got %d", updated.StockQuantity)
	}

	unread, err := s.notifications.ListUnread(admin.ID, 10)
	if err != nil {
		t.Fatalf("ListUnread: %v", err)
	}
	if len(unread) != 1 {
		t.Fatalf("expected a low-stock warning for the admin, got %d notifications", len(unread))
	}
	if !strings.Contains(unread[0].Message, "SB-01") {
		t.Errorf("expected the product code in the warning, got %q", unread[0].Message)
	}

	// Stock can never go negative.
	if _, err := s.products.AdjustStock(product.ID, &models.StockAdjustRequest{
		Quantity: -5, Reason: "oops",
	}, clerk.ID); err == nil {
		t.Fatal("expected an error drawing stock below zero")
	}

	movements, err := s.products.GetStockMovements(product.ID)
	if err != nil {
		t.Fatalf("GetStockMovements: %v", err)
	}
	if len(movements) != 1 {
		t.Fatalf("expected 1 recorded movement, got %d", len(movements))
	}
	if movements[0].Quantity != -6 || movements[0].UserID != clerk.ID {
		t.Errorf("unexpected movement %+v", movements[0])
	}
}
