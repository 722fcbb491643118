package models

import (
	"errors"

	goval "github.com/go-passwd/validator"
	"github.com/google/uuid"
	"github.com/leebenson/conform"
	"golang.org/x/crypto/bcrypt"
)

// User represents a user of the application
type User struct {
	Model
	Fullname       string         `json:"fullname" binding:"required,min=2"`
	Email          string         `json:"email" gorm:"unique;not null" binding:"required,email"`
	Password       string         `json:"password,omitempty" gorm:"-"`
	HashedPassword string         `json:"-"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	RoleID         uuid.UUID      `gorm:"type:uuid" json:"role_id"`
	Role           Role           `gorm:"foreignKey:RoleID" json:"role"`
	Notifications  []Notification `gorm:"foreignKey:UserID" json:"-"`
}

type SignupRequest struct {
	Fullname string `json:"fullname" binding:"required,min=2" conform:"trim"`
	Email    string `json:"email" binding:"required,email" conform:"trim,lower"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" conform:"trim,lower"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	RoleName string `json:"role_name"`
}

func (u *User) Response() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Fullname: u.Fullname,
		Email:    u.Email,
		RoleName: u.Role.Name,
	}
}

func ValidatePassword(password string) error {
	passwordValidator := goval.New(goval.MinLength(6, errors.New("password cant be less than 6 characters")),
		goval.MaxLength(30, errors.New("password cant be more than 30 characters")))
	return passwordValidator.Validate(password)
}

// ConformInput trims/normalizes tagged string fields in place.
func ConformInput(data interface{}) error {
	return conform.Strings(data)
}

func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
}
