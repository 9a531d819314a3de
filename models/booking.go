package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// SelectedOption is one resolved (group, option) pair on the wire.
type SelectedOption struct {
	OptionID      string `bson:"option_id" json:"option_id"`             // owning group id
	OptionValueID string `bson:"option_value_id" json:"option_value_id"` // chosen option id
}

// BookingRequest is the payload assembled at submission time. Built once,
// immutable afterward.
type BookingRequest struct {
	ServiceID      string           `json:"service_id"`
	Options        []SelectedOption `json:"options"`
	SubscriptionID *string          `json:"subscription_id"` // nil for a single session
	Date           string           `json:"date"`            // "YYYY-MM-DD"
	Time           string           `json:"time"`            // "HH:MM"
	PaymentMethod  string           `json:"payment_method"`
	TotalPrice     float64          `json:"total_price"`
}

// Booking is a confirmed booking record.
type Booking struct {
	ID             string           `bson:"id" json:"id"`
	SalonID        string           `bson:"salon_id" json:"salon_id"`
	UserID         string           `bson:"user_id" json:"user_id"`
	ServiceID      string           `bson:"service_id" json:"service_id"`
	ServiceName    string           `bson:"service_name" json:"service_name"` // denormalized for listings
	Options        []SelectedOption `bson:"options,omitempty" json:"options,omitempty"`
	SubscriptionID *string          `bson:"subscription_id,omitempty" json:"subscription_id,omitempty"`
	Date           string           `bson:"date" json:"date"`
	Time           string           `bson:"time" json:"time"`
	PaymentMethod  string           `bson:"payment_method" json:"payment_method"`
	TotalPrice     float64          `bson:"total_price" json:"total_price"`
	Currency       string           `bson:"currency" json:"currency"`
	Status         string           `bson:"status" json:"status"`
	CreatedAt      time.Time        `bson:"created_at" json:"created_at"`
}
