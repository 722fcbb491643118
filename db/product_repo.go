package db

import (
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ProductRepository interface {
	CreateProduct(product *models.Product) error
	GetProductByID(id uint) (*models.Product, error)
	GetAllProducts() ([]models.Product, error)
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uint) error
	AdjustStock(productID uint, quantity int, reason string, userID uint) (*models.Product, error)
	GetStockMovements(productID uint) ([]models.StockMovement, error)
}

type productRepo struct {
	DB *gorm.DB
}

func NewProductRepo(db *GormDB) ProductRepository {
	return &productRepo{db.DB}
}

func (r *productRepo) CreateProduct(product *models.Product) error {
	return r.DB.Create(product).Error
}

func (r *productRepo) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) GetAllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) UpdateProduct(product *models.Product) error {
	return r.DB.Save(product).Error
}

func (r *productRepo) DeleteProduct(id uint) error {
	return r.DB.Delete(&models.Product{}, id).Error
}

// AdjustStock applies a stock delta and records the movement in one
// transaction. Returns the product with its updated quantity.
func (r *productRepo) AdjustStock(productID uint, quantity int, reason string, userID uint) (*models.Product, error) {
	var product models.Product
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, productID).Error; err != nil {
			return err
		}
		newQuantity := product.StockQuantity + quantity
		if newQuantity < 0 {
			return errors.New("stock cannot go negative")
		}

		if err := tx.Model(&product).Update("stock_quantity", newQuantity).Error; err != nil {
			return err
		}
		product.StockQuantity = newQuantity

		movement := models.StockMovement{
			ProductID: productID,
			Quantity:  quantity,
			Reason:    reason,
			UserID:    userID,
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) GetStockMovements(productID uint) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := r.DB.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&movements).Error
	if err != nil {
		return nil, err
	}
	return movements, nil
}
