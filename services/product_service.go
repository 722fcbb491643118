package services

import (
	"fmt"
	"log"

	"github.com/muratfirtina/teklif-sistemi-sub002/config"
	"github.com/muratfirtina/teklif-sistemi-sub002/db"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
)

type ProductService interface {
	CreateProduct(req *models.ProductRequest) (*models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	ListProducts() ([]models.Product, error)
	UpdateProduct(id uint, req *models.ProductRequest) (*models.Product, error)
	DeleteProduct(id uint) error
	AdjustStock(productID uint, req *models.StockAdjustRequest, userID uint) (*models.Product, error)
	GetStockMovements(productID uint) ([]models.StockMovement, error)
}

type productService struct {
	Config        *config.Config
	productRepo   db.ProductRepository
	notifications NotificationService
}

func NewProductService(productRepo db.ProductRepository, notifications NotificationService, conf *config.Config) ProductService {
	return &productService{
		Config:        conf,
		productRepo:   productRepo,
		notifications: notifications,
	}
}

func (s *productService) CreateProduct(req *models.ProductRequest) (*models.Product, error) {
	if err := models.ConformInput(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:          req.Name,
		Code:          req.Code,
		Description:   req.Description,
		UnitPrice:     req.UnitPrice,
		StockQuantity: req.StockQuantity,
		LowStockLevel: req.LowStockLevel,
	}
	if product.LowStockLevel == 0 {
		product.LowStockLevel = s.Config.LowStockDefault
	}

	if err := s.productRepo.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProduct(id uint) (*models.Product, error) {
	return s.productRepo.GetProductByID(id)
}

func (s *productService) ListProducts() ([]models.Product, error) {
	return s.productRepo.GetAllProducts()
}

func (s *productService) UpdateProduct(id uint, req *models.ProductRequest) (*models.Product, error) {
	if err := models.ConformInput(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Code = req.Code
	product.Description = req.Description
	product.UnitPrice = req.UnitPrice
	if req.LowStockLevel > 0 {
		product.LowStockLevel = req.LowStockLevel
	}

	if err := s.productRepo.UpdateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	return s.productRepo.DeleteProduct(id)
}

// AdjustStock applies the stock delta and, when the product drops to or
// below its low-stock level, fans a warning out to the admin role.
func (s *productService) AdjustStock(productID uint, req *models.StockAdjustRequest, userID uint) (*models.Product, error) {
	if err := models.ConformInput(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.AdjustStock(productID, req.Quantity, req.Reason, userID)
	if err != nil {
		return nil, err
	}

	if req.Quantity < 0 && product.StockQuantity <= product.LowStockLevel {
		message := fmt.Sprintf("Stock for %s (%s) is low: %d left", product.Name, product.Code, product.StockQuantity)
		if _, err := s.notifications.FanoutToRole(models.RoleAdmin, message, models.RelatedRef{}); err != nil {
			log.Printf("low stock fanout: %v", err)
		}
	}

	return product, nil
}

func (s *productService) GetStockMovements(productID uint) ([]models.StockMovement, error) {
	return s.productRepo.GetStockMovements(productID)
}
