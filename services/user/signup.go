package user

import (
	"fmt"
	"strings"
	"time"

	"lumea/models"
	"lumea/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a customer account and signs it in.
func (s *DefaultUserService) RegisterUser(input RegistrationInput) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := VerifyPasswordComplexity(input.Password); err != nil {
		return nil, err
	}

	if existing, _ := s.Repo.GetByEmail(email); existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	newUser := models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        email,
		Phone:        input.Phone,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleCustomer,
	}

	if err := s.Repo.Create(&newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(newUser.ID, newUser.Email, newUser.Role, utils.TokenTTLHours*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := cacheAuthToken(newUser.ID, token); err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: newUser}, nil
}
