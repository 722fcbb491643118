package db

import (
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	CreateCustomer(customer *models.Customer) error
	GetCustomerByID(id uint) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	UpdateCustomer(customer *models.Customer) error
	DeleteCustomer(id uint) error
}

type customerRepo struct {
	DB *gorm.DB
}

func NewCustomerRepo(db *GormDB) CustomerRepository {
	return &customerRepo{db.DB}
}

func (r *customerRepo) CreateCustomer(customer *models.Customer) error {
	return r.DB.Create(customer).Error
}

func (r *customerRepo) GetCustomerByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) GetAllCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.DB.Order("name ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepo) UpdateCustomer(customer *models.Customer) error {
	return r.DB.Save(customer).Error
}

func (r *customerRepo) DeleteCustomer(id uint) error {
	return r.DB.Delete(&models.Customer{}, id).Error
}
