package booking

import (
	bookingRepo "lumea/database/repository/booking"
	serviceRepo "lumea/database/repository/service"
	"lumea/models"
	"lumea/services/tasks"
)

// BookingSessionService manages one in-progress service configuration:
// selection mutations, package quoting, and final confirmation.
type BookingSessionService interface {
	StartSession(serviceID, userID string) (*models.BookingSessionView, error)
	ApplySelection(sessionID, userID string, input models.SelectionInput) (*models.BookingSessionView, error)
	QuotePackage(sessionID, userID, packageID string) (*models.BookingSessionView, error)
	ClearPendingPackage(sessionID, userID string) (*models.BookingSessionView, error)
	ConfirmBooking(sessionID, userID string, input models.ConfirmInput) (*models.Booking, error)
	CancelSession(sessionID, userID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	ServiceRepo serviceRepo.ServiceRepository
	BookingRepo bookingRepo.BookingRepository
	Reminders   tasks.ReminderScheduler
}
