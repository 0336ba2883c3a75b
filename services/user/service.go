package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "roombook/database/repository/user"
	"roombook/models"
	"roombook/utils"
)

// tokenLifetime matches the auth session TTL so a token never outlives its
// server-side session.
const tokenLifetime = utils.AuthSessionTTL

// Register creates a new account. The role defaults to "user"; only an
// admin-facing handler passes "admin" through.
func (s *DefaultUserService) Register(req models.RegisterUserRequest) (*models.User, error) {
	if existing, err := s.Repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	now := time.Now().Unix()
	newUser := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	utils.GetLogger().Info("user registered",
		zap.String("userID", newUser.ID), zap.String("role", newUser.Role))
	return newUser, nil
}

// Authenticate verifies credentials, issues a JWT and records its hash as
// the user's active session.
func (s *DefaultUserService) Authenticate(email, password string) (*models.LoginResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if s.AuthCache != nil {
		if err := utils.SaveAuthSession(s.AuthCache, userRec.ID, utils.HashToken(token)); err != nil {
			return nil, fmt.Errorf("failed to create auth session: %w", err)
		}
	}

	return &models.LoginResponse{Token: token, User: *userRec}, nil
}

// RevokeAuthToken signs the user out everywhere by dropping their session.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if s.AuthCache == nil {
		return nil
	}
	return utils.RevokeAuthSession(s.AuthCache, userID)
}

// GetByID retrieves a user by ID.
func (s *DefaultUserService) GetByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return userRec, nil
}

// GetByEmail retrieves a user by email.
func (s *DefaultUserService) GetByEmail(email string) (*models.User, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return userRec, nil
}

// UpdatePassword rotates a password after verifying the current one, then
// revokes the active session so the old token stops working.
func (s *DefaultUserService) UpdatePassword(userID, currentPassword, newPassword string) error {
	userRec, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	userRec.PasswordHash = string(hash)
	userRec.UpdatedAt = time.Now().Unix()
	if err := s.Repo.Update(userRec); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return s.RevokeAuthToken(userID)
}

// GetAllUsers lists every account (admin view).
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// DeleteUser removes an account and revokes its session.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.RevokeAuthToken(userID)
}
