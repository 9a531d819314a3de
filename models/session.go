package models

// BookingSession holds the state of one in-progress service configuration:
// a snapshot of the service, the current selection, and any pending package
// quote awaiting explicit confirmation. It lives in Redis under a TTL and is
// discarded whenever the active service changes.
type BookingSession struct {
	SessionID      string          `json:"sessionId"`
	UserID         string          `json:"userId"`
	Service        Service         `json:"service"`
	SelectedIDs    []string        `json:"selectedIds,omitempty"`
	PendingPackage *PendingPackage `json:"pendingPackage,omitempty"`
}

// PendingPackage is the two-phase commit state for a multi-session package:
// quoted and held until the user explicitly confirms, never booked directly.
type PendingPackage struct {
	Package PackageOption `json:"package"`
	Quote   PackageQuote  `json:"quote"`
}

// SelectionInput is one selection mutation from the client. An empty GroupID
// means a legacy flat addon toggle.
type SelectionInput struct {
	GroupID  string `json:"groupId,omitempty"`
	OptionID string `json:"optionId" binding:"required"`
}

// ConfirmInput carries the schedule and payment choice for final confirmation.
type ConfirmInput struct {
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// BookingSessionView is what the client sees after every mutation: the
// recomputed price, which required groups are still unmet, and whether
// checkout is currently allowed.
type BookingSessionView struct {
	SessionID      string          `json:"sessionId"`
	ServiceID      string          `json:"serviceId"`
	SelectedIDs    []string        `json:"selectedIds"`
	Price          PriceBreakdown  `json:"price"`
	PriceDisplay   string          `json:"priceDisplay"`
	MissingGroups  []string        `json:"missingGroups,omitempty"` // titles of unmet required groups
	CanSubmit      bool            `json:"canSubmit"`
	PendingPackage *PendingPackage `json:"pendingPackage,omitempty"`
}
