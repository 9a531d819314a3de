package models

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	UserID      string `json:"userId"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}
