package db

import (
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	GetCompanySetting() (*models.CompanySetting, error)
	UpdateCompanySetting(setting *models.CompanySetting) error
}

type settingsRepo struct {
	DB *gorm.DB
}

func NewSettingsRepo(db *GormDB) SettingsRepository {
	return &settingsRepo{db.DB}
}

func (r *settingsRepo) GetCompanySetting() (*models.CompanySetting, error) {
	var setting models.CompanySetting
	if err := r.DB.First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingsRepo) UpdateCompanySetting(setting *models.CompanySetting) error {
	return r.DB.Save(setting).Error
}
