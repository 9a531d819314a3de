package notification

import (
	"context"

	"lumea/models"
	"lumea/utils"

	"go.uber.org/zap"
)

// NotificationService delivers appointment reminders to users.
type NotificationService interface {
	SendBookingReminder(ctx context.Context, p models.ReminderPayload) error
}

// LogNotificationService writes reminders to the application log. Push and
// SMS delivery sit behind this interface when a channel is wired up.
type LogNotificationService struct{}

func NewLogNotificationService() *LogNotificationService {
	return &LogNotificationService{}
}

func (s *LogNotificationService) SendBookingReminder(ctx context.Context, p models.ReminderPayload) error {
	utils.GetLogger().Info("booking reminder",
		zap.String("bookingID", p.BookingID),
		zap.String("userID", p.UserID),
		zap.String("service", p.ServiceName),
		zap.String("date", p.Date),
		zap.String("time", p.Time),
	)
	return nil
}
