package db

import (
	"log"

	"github.com/google/uuid"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	errs "github.com/muratfirtina/teklif-sistemi-sub002/errors"
)

type AuthRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	IsEmailExist(email string) error
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	FindRoleByName(name string) (*models.Role, error)
	ListUserIDsByRole(roleName string) ([]uint, error)
}

type authRepo struct {
	DB *gorm.DB
}

func NewAuthRepo(db *GormDB) AuthRepository {
	return &authRepo{db.DB}
}

func (a *authRepo) CreateUser(user *models.User) (*models.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}

	// Assign the default role when none was set by the caller.
	if user.RoleID == uuid.Nil {
		role, err := a.FindRoleByName(models.RoleUser)
		if err != nil {
			log.Printf("CreateUser error fetching default role: %v", err)
			return nil, err
		}
		user.RoleID = role.ID
	}

	if err := a.DB.Create(user).Error; err != nil {
		log.Printf("CreateUser error: %v", err)
		return nil, err
	}

	return user, nil
}

func (a *authRepo) IsEmailExist(email string) error {
	var count int64
	err := a.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gorm count error")
	}
	if count > 0 {
		return errors.New("email already in use")
	}
	return nil
}

func (a *authRepo) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := a.DB.Preload("Role").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, errs.InActiveUserError
	}
	return &user, nil
}

func (a *authRepo) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := a.DB.Preload("Role").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, errs.InActiveUserError
	}
	return &user, nil
}

func (a *authRepo) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := a.DB.Preload("Role").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (a *authRepo) FindRoleByName(name string) (*models.Role, error) {
	var role models.Role
	if err := a.DB.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// ListUserIDsByRole resolves a role name to the ids of its active users.
// Used by notification fanout.
func (a *authRepo) ListUserIDsByRole(roleName string) ([]uint, error) {
	var ids []uint
	err := a.DB.Model(&models.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ? AND users.is_active = ?", roleName, true).
		Pluck("users.id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing users by role")
	}
	return ids, nil
}
