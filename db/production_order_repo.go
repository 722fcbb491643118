package db

import (
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"gorm.io/gorm"
)

type ProductionOrderRepository interface {
	CreateProductionOrder(order *models.ProductionOrder) error
	GetProductionOrderByID(id uint) (*models.ProductionOrder, error)
	GetAllProductionOrders() ([]models.ProductionOrder, error)
	UpdateProductionOrderStatus(id uint, status string) error
}

type productionOrderRepo struct {
	DB *gorm.DB
}

func NewProductionOrderRepo(db *GormDB) ProductionOrderRepository {
	return &productionOrderRepo{db.DB}
}

func (r *productionOrderRepo) CreateProductionOrder(order *models.ProductionOrder) error {
	return r.DB.Create(order).Error
}

func (r *productionOrderRepo) GetProductionOrderByID(id uint) (*models.ProductionOrder, error) {
	var order models.ProductionOrder
	err := r.DB.Preload("Quotation").
		Preload("Quotation.Customer").
		Preload("Quotation.Items").
		Preload("Quotation.Items.Product").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *productionOrderRepo) GetAllProductionOrders() ([]models.ProductionOrder, error) {
	var orders []models.ProductionOrder
	err := r.DB.Preload("Quotation").
		Preload("Quotation.Customer").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *productionOrderRepo) UpdateProductionOrderStatus(id uint, status string) error {
	return r.DB.Model(&models.ProductionOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}
