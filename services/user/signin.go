package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lumea/models"
	"lumea/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser verifies credentials and issues a fresh token. The token
// hash is cached so middleware can validate without a DB round trip and
// sign-out can revoke it.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Warn("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, utils.TokenTTLHours*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := cacheAuthToken(userRec.ID, token); err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *userRec}, nil
}

// SignOut revokes the cached token hash for the user.
func (s *DefaultUserService) SignOut(userID string) error {
	ctx := context.Background()
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to clear auth session: %w", err)
	}
	return nil
}

// GetUserByID fetches a user record.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

func cacheAuthToken(userID, token string) error {
	ctx := context.Background()
	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userID
	if err := authCache.Set(ctx, cacheKey, utils.HashToken(token), utils.TokenTTLHours*time.Hour).Err(); err != nil {
		return fmt.Errorf("failed to cache auth session: %w", err)
	}
	return nil
}
