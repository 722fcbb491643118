package main

import (
	"log"

	"github.com/muratfirtina/teklif-sistemi-sub002/config"
	"github.com/muratfirtina/teklif-sistemi-sub002/db"
	"github.com/muratfirtina/teklif-sistemi-sub002/mailing"
	"github.com/muratfirtina/teklif-sistemi-sub002/server"
	"github.com/muratfirtina/teklif-sistemi-sub002/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	mail := &mailing.Mailgun{}
	mail.Init(conf)

	gormDB := db.GetDB(conf)

	authRepo := db.NewAuthRepo(gormDB)
	customerRepo := db.NewCustomerRepo(gormDB)
	productRepo := db.NewProductRepo(gormDB)
	quotationRepo := db.NewQuotationRepo(gormDB)
	productionOrderRepo := db.NewProductionOrderRepo(gormDB)
	invoiceRepo := db.NewInvoiceRepo(gormDB)
	notificationRepo := db.NewNotificationRepo(gormDB)
	settingsRepo := db.NewSettingsRepo(gormDB)

	notificationService := services.NewNotificationService(notificationRepo, authRepo)
	authService := services.NewAuthService(authRepo, conf)
	productService := services.NewProductService(productRepo, notificationService, conf)
	quotationService := services.NewQuotationService(quotationRepo, productRepo, productionOrderRepo, settingsRepo, notificationService, mail, conf)
	productionOrderService := services.NewProductionOrderService(productionOrderRepo, notificationService)
	invoiceService := services.NewInvoiceService(invoiceRepo, quotationRepo, notificationService, conf)

	s := &server.Server{
		Config: conf,
		Mail:   mail,
		Policy: server.DefaultPolicy(),

		AuthRepository:     authRepo,
		CustomerRepository: customerRepo,
		SettingsRepository: settingsRepo,

		AuthService:            authService,
		NotificationService:    notificationService,
		ProductService:         productService,
		QuotationService:       quotationService,
		ProductionOrderService: productionOrderService,
		InvoiceService:         invoiceService,
	}
	s.Start()
}
