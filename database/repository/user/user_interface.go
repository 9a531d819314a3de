package userRepo

import "lumea/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users (admin surface).
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// AddFavorite adds a service id to the user's favourites set.
	AddFavorite(userID, serviceID string) error
	// RemoveFavorite removes a service id from the user's favourites set.
	RemoveFavorite(userID, serviceID string) error
	// SetRole updates a user's role (admin surface).
	SetRole(userID, role string) error
}
