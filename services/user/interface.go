package user

import (
	userRepo "roombook/database/repository/user"
	"roombook/models"

	"github.com/go-redis/redis/v8"
)

// UserService manages accounts and sign-in sessions.
type UserService interface {
	// Registration and authentication
	Register(req models.RegisterUserRequest) (*models.User, error)
	Authenticate(email, password string) (*models.LoginResponse, error)
	RevokeAuthToken(userID string) error

	// User management
	GetByID(userID string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdatePassword(userID, currentPassword, newPassword string) error

	// Admin
	GetAllUsers() ([]models.User, error)
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}
