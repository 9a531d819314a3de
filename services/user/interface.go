package user

import (
	userRepo "lumea/database/repository/user"
	"lumea/models"
)

// RegistrationInput is the signup payload.
type RegistrationInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// UserService defines account, favourites, and staff-management operations.
type UserService interface {
	RegisterUser(input RegistrationInput) (*models.AuthResponse, error)
	AuthenticateUser(email, password string) (*models.AuthResponse, error)
	SignOut(userID string) error
	GetUserByID(id string) (*models.User, error)

	AddFavorite(userID, serviceID string) error
	RemoveFavorite(userID, serviceID string) error
	ListFavorites(userID string) ([]string, error)

	// Admin surface.
	ListUsers() ([]models.User, error)
	SetUserRole(userID, role string) error
	DeleteUser(userID string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
