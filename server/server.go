package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muratfirtina/teklif-sistemi-sub002/config"
	"github.com/muratfirtina/teklif-sistemi-sub002/db"
	"github.com/muratfirtina/teklif-sistemi-sub002/mailing"
	"github.com/muratfirtina/teklif-sistemi-sub002/services"
)

type Server struct {
	Config *config.Config
	Mail   *mailing.Mailgun
	Policy *RolePolicy

	AuthRepository     db.AuthRepository
	CustomerRepository db.CustomerRepository
	SettingsRepository db.SettingsRepository

	AuthService            services.AuthService
	NotificationService    services.NotificationService
	ProductService         services.ProductService
	QuotationService       services.QuotationService
	ProductionOrderService services.ProductionOrderService
	InvoiceService         services.InvoiceService
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() {
	if s.Policy == nil {
		s.Policy = DefaultPolicy()
	}

	r := s.setupRouter()

	port := s.Config.Port
	if port == 0 {
		port = 8080
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		log.Printf("server listening on :%d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown: %v", err)
	}
	log.Println("server stopped")
}
