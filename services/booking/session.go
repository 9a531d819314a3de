package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lumea/models"
	"lumea/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionKeyPrefix = "bookingSession:"
	sessionTTL       = 10 * time.Minute
)

// StartSession loads the service, creates a fresh session with an empty
// selection, and stores it in Redis. Any previous session for another
// service is simply abandoned to its TTL; selections never carry over
// between services.
func (s *DefaultBookingSessionService) StartSession(serviceID, userID string) (*models.BookingSessionView, error) {
	svc, err := s.ServiceRepo.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if !svc.IsActive {
		return nil, fmt.Errorf("service %s is not available for booking", serviceID)
	}

	session := models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Service:   *svc,
	}
	if err := saveSession(&session); err != nil {
		return nil, err
	}
	return s.view(&session), nil
}

// ApplySelection applies one selection mutation and returns the recomputed
// view. An input with a group id uses group semantics (single = replace
// within the group, multi = toggle); an input without one toggles a legacy
// flat addon. An option can only be selected through the group that owns it;
// routing it through another group (or the flat-addon path) is rejected so a
// single-type group can never hold two selected options. A pending package
// quote is invalidated by any mutation since its per-session total is no
// longer current.
func (s *DefaultBookingSessionService) ApplySelection(sessionID, userID string, input models.SelectionInput) (*models.BookingSessionView, error) {
	session, err := loadSession(sessionID, userID)
	if err != nil {
		return nil, err
	}

	cat := BuildCatalog(&session.Service)
	sel := SelectionFromIDs(session.SelectedIDs)

	if input.GroupID != "" {
		group, ok := cat.Group(input.GroupID)
		if !ok {
			return nil, fmt.Errorf("unknown addon group %s", input.GroupID)
		}
		if !groupHasOption(group, input.OptionID) {
			return nil, fmt.Errorf("option %s does not belong to group %s", input.OptionID, input.GroupID)
		}
		sel = ApplyGroupSelection(sel, group, input.OptionID)
	} else {
		if owner := cat.GroupOf(input.OptionID); owner != "" {
			return nil, fmt.Errorf("option %s belongs to group %s and must be selected through it", input.OptionID, owner)
		}
		sel = ToggleAddon(sel, input.OptionID)
	}

	session.SelectedIDs = sel.IDs()
	session.PendingPackage = nil

	if err := saveSession(session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// QuotePackage evaluates a package against the current per-session total and
// holds the quote in the session as pending. It never books; confirmation is
// a separate explicit step so a single tap cannot commit a multi-session
// purchase.
func (s *DefaultBookingSessionService) QuotePackage(sessionID, userID, packageID string) (*models.BookingSessionView, error) {
	session, err := loadSession(sessionID, userID)
	if err != nil {
		return nil, err
	}

	var pkg *models.PackageOption
	for i := range session.Service.PackageOptions {
		if session.Service.PackageOptions[i].ID == packageID {
			pkg = &session.Service.PackageOptions[i]
			break
		}
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s not found on service %s", packageID, session.Service.ID)
	}

	cat := BuildCatalog(&session.Service)
	sel := SelectionFromIDs(session.SelectedIDs)
	price := ComputePrice(session.Service.Price, cat, sel)

	quote, err := EvaluatePackage(price.Total, *pkg)
	if err != nil {
		utils.GetLogger().Warn("rejected invalid package from catalog",
			zap.String("packageID", packageID), zap.Error(err))
		return nil, fmt.Errorf("package cannot be quoted: %w", err)
	}

	session.PendingPackage = &models.PendingPackage{Package: *pkg, Quote: quote}
	if err := saveSession(session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// ClearPendingPackage discards a quoted package without confirming it
// (closing the confirmation sheet client-side).
func (s *DefaultBookingSessionService) ClearPendingPackage(sessionID, userID string) (*models.BookingSessionView, error) {
	session, err := loadSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	session.PendingPackage = nil
	if err := saveSession(session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// ConfirmBooking validates the selection, builds the final request payload,
// persists the booking, schedules a reminder, and deletes the session.
func (s *DefaultBookingSessionService) ConfirmBooking(sessionID, userID string, input models.ConfirmInput) (*models.Booking, error) {
	session, err := loadSession(sessionID, userID)
	if err != nil {
		return nil, err
	}

	cat := BuildCatalog(&session.Service)
	sel := SelectionFromIDs(session.SelectedIDs)

	var subscriptionID *string
	if session.PendingPackage != nil {
		id := session.PendingPackage.Package.ID
		subscriptionID = &id
	}

	req, err := BuildBookingRequest(&session.Service, cat, sel, input.Date, input.Time, input.PaymentMethod, subscriptionID)
	if err != nil {
		return nil, err
	}
	if session.PendingPackage != nil {
		// A confirmed package pays the quoted bundle price, not the
		// per-session total.
		req.TotalPrice = session.PendingPackage.Quote.FinalTotal
	}

	finalBooking := models.Booking{
		ID:             uuid.New().String(),
		SalonID:        session.Service.SalonID,
		UserID:         userID,
		ServiceID:      req.ServiceID,
		ServiceName:    session.Service.Name,
		Options:        req.Options,
		SubscriptionID: req.SubscriptionID,
		Date:           req.Date,
		Time:           req.Time,
		PaymentMethod:  req.PaymentMethod,
		TotalPrice:     req.TotalPrice,
		Currency:       session.Service.Currency,
		Status:         models.BookingStatusConfirmed,
		CreatedAt:      time.Now(),
	}

	if err := s.BookingRepo.Create(&finalBooking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(finalBooking); err != nil {
			// The booking stands; a missed reminder is not worth failing it.
			utils.GetLogger().Error("failed to schedule booking reminder",
				zap.String("bookingID", finalBooking.ID), zap.Error(err))
		}
	}

	deleteSession(sessionID)
	return &finalBooking, nil
}

// CancelSession drops the session and whatever pending state it held.
func (s *DefaultBookingSessionService) CancelSession(sessionID, userID string) error {
	if _, err := loadSession(sessionID, userID); err != nil {
		return err
	}
	deleteSession(sessionID)
	return nil
}

func (s *DefaultBookingSessionService) view(session *models.BookingSession) *models.BookingSessionView {
	cat := BuildCatalog(&session.Service)
	sel := SelectionFromIDs(session.SelectedIDs)
	price := ComputePrice(session.Service.Price, cat, sel)

	missing := MissingRequiredGroups(cat, sel)
	titles := make([]string, 0, len(missing))
	for _, g := range missing {
		titles = append(titles, g.Title)
	}

	return &models.BookingSessionView{
		SessionID:      session.SessionID,
		ServiceID:      session.Service.ID,
		SelectedIDs:    sel.IDs(),
		Price:          price,
		PriceDisplay:   FormatDisplayPrice(price.Total, session.Service.Currency),
		MissingGroups:  titles,
		CanSubmit:      len(missing) == 0,
		PendingPackage: session.PendingPackage,
	}
}

func saveSession(session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Set(ctx, sessionKeyPrefix+session.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func loadSession(sessionID, userID string) (*models.BookingSession, error) {
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()

	data, err := cacheClient.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("booking session does not belong to this user")
	}
	return &session, nil
}

func deleteSession(sessionID string) {
	ctx := context.Background()
	if err := utils.GetSessionCacheClient().Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		utils.GetLogger().Warn("failed to delete booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}
}
