package services

import (
	"fmt"
	"log"

	"github.com/muratfirtina/teklif-sistemi-sub002/db"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
)

type ProductionOrderService interface {
	GetProductionOrder(id uint) (*models.ProductionOrder, error)
	ListProductionOrders() ([]models.ProductionOrder, error)
	UpdateStatus(id uint, status string) error
}

type productionOrderService struct {
	productionOrderRepo db.ProductionOrderRepository
	notifications       NotificationService
}

func NewProductionOrderService(productionOrderRepo db.ProductionOrderRepository, notifications NotificationService) ProductionOrderService {
	return &productionOrderService{
		productionOrderRepo: productionOrderRepo,
		notifications:       notifications,
	}
}

func (s *productionOrderService) GetProductionOrder(id uint) (*models.ProductionOrder, error) {
	return s.productionOrderRepo.GetProductionOrderByID(id)
}

func (s *productionOrderService) ListProductionOrders() ([]models.ProductionOrder, error) {
	return s.productionOrderRepo.GetAllProductionOrders()
}

// UpdateStatus moves a production order through its lifecycle. Completion
// notifies the owner of the originating quotation.
func (s *productionOrderService) UpdateStatus(id uint, status string) error {
	order, err := s.productionOrderRepo.GetProductionOrderByID(id)
	if err != nil {
		return err
	}
	if order.Status == models.ProductionStatusCompleted {
		return fmt.Errorf("production order #%d is already completed", id)
	}

	if err := s.productionOrderRepo.UpdateProductionOrderStatus(id, status); err != nil {
		return err
	}

	if status == models.ProductionStatusCompleted {
		message := fmt.Sprintf("Production order #%d for quotation %s is completed", order.ID, order.Quotation.Number)
		related := models.RelatedRef{Type: models.RelatedProductionOrder, ID: order.ID}
		if _, err := s.notifications.Notify(order.Quotation.UserID, message, related); err != nil {
			log.Printf("notifying quotation owner: %v", err)
		}
	}

	return nil
}
