package services

import (
	"fmt"
	"log"

	"github.com/muratfirtina/teklif-sistemi-sub002/config"
	"github.com/muratfirtina/teklif-sistemi-sub002/db"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/muratfirtina/teklif-sistemi-sub002/services/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	SignupUser(req *models.SignupRequest) (*models.UserResponse, error)
	LoginUser(req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
}

func NewAuthService(authRepo db.AuthRepository, conf *config.Config) AuthService {
	return &authService{
		Config:   conf,
		authRepo: authRepo,
	}
}

func (s *authService) SignupUser(req *models.SignupRequest) (*models.UserResponse, error) {
	if err := models.ConformInput(req); err != nil {
		return nil, err
	}
	if err := models.ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.authRepo.IsEmailExist(req.Email); err != nil {
		return nil, err
	}

	hashed, err := GenerateHashPassword(req.Password)
	if err != nil {
		log.Printf("hashing password: %v", err)
		return nil, fmt.Errorf("could not hash password")
	}

	user := &models.User{
		Fullname:       req.Fullname,
		Email:          req.Email,
		HashedPassword: string(hashed),
		IsActive:       true,
	}

	if req.Role != "" {
		role, err := s.authRepo.FindRoleByName(req.Role)
		if err != nil {
			return nil, fmt.Errorf("unknown role %q", req.Role)
		}
		user.RoleID = role.ID
	}

	created, err := s.authRepo.CreateUser(user)
	if err != nil {
		return nil, err
	}

	// Reload so the role association is present on the response.
	created, err = s.authRepo.FindUserByID(created.ID)
	if err != nil {
		return nil, err
	}

	resp := created.Response()
	return &resp, nil
}

func (s *authService) LoginUser(req *models.LoginRequest) (*models.LoginResponse, error) {
	if err := models.ConformInput(req); err != nil {
		return nil, err
	}

	user, err := s.authRepo.FindUserByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := user.VerifyPassword(req.Password); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := jwt.GenerateToken(user.ID, user.Role.Name, s.Config.JWTSecret)
	if err != nil {
		log.Printf("generating token: %v", err)
		return nil, fmt.Errorf("could not generate access token")
	}

	return &models.LoginResponse{
		AccessToken: token,
		User:        user.Response(),
	}, nil
}

func GenerateHashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
