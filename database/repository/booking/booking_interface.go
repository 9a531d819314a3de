package bookingRepo

import "lumea/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// ListByUser retrieves a user's bookings, newest first.
	ListByUser(userID string) ([]models.Booking, error)
	// ListAll retrieves bookings, optionally filtered by date (admin surface).
	ListAll(date string) ([]models.Booking, error)
	// UpdateStatus transitions a booking's status.
	UpdateStatus(id string, status string) error
}
