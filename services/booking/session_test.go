package booking

import (
	"errors"
	"testing"

	"lumea/models"
	"lumea/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubServiceRepo serves a single fixed service.
type stubServiceRepo struct {
	svc *models.Service
}

func (r *stubServiceRepo) GetByID(id string) (*models.Service, error) {
	if r.svc != nil && r.svc.ID == id {
		return r.svc, nil
	}
	return nil, errors.New("service not found")
}

func (r *stubServiceRepo) List(categoryID string, activeOnly bool) ([]models.Service, error) {
	return nil, nil
}
func (r *stubServiceRepo) Create(svc *models.Service) error           { return nil }
func (r *stubServiceRepo) Update(svc *models.Service) error           { return nil }
func (r *stubServiceRepo) Delete(id string) error                     { return nil }
func (r *stubServiceRepo) SetActive(id string, active bool) error     { return nil }
func (r *stubServiceRepo) AppendImageURL(id string, url string) error { return nil }
func (r *stubServiceRepo) CreateCategory(cat *models.Category) error  { return nil }
func (r *stubServiceRepo) ListCategories() ([]models.Category, error) { return nil, nil }
func (r *stubServiceRepo) DeleteCategory(id string) error             { return nil }

// stubBookingRepo records created bookings in memory.
type stubBookingRepo struct {
	created []models.Booking
}

func (r *stubBookingRepo) Create(b *models.Booking) error {
	r.created = append(r.created, *b)
	return nil
}

func (r *stubBookingRepo) GetByID(id string) (*models.Booking, error)         { return nil, nil }
func (r *stubBookingRepo) ListByUser(userID string) ([]models.Booking, error) { return nil, nil }
func (r *stubBookingRepo) ListAll(date string) ([]models.Booking, error)      { return nil, nil }
func (r *stubBookingRepo) UpdateStatus(id string, status string) error        { return nil }

func bookableTestService() *models.Service {
	svc := testService()
	svc.IsActive = true
	svc.PackageOptions = []models.PackageOption{
		{ID: "pkg-5", Title: "5 Sessions", SessionsCount: 5, DiscountPercent: 10, Subscription: true},
	}
	return svc
}

// newSessionTestService wires the session service against an in-process
// Redis and in-memory repositories.
func newSessionTestService(t *testing.T) (*DefaultBookingSessionService, *stubBookingRepo) {
	t.Helper()

	mr := miniredis.RunT(t)
	prev := utils.SessionCacheClient
	utils.SessionCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { utils.SessionCacheClient = prev })

	bkRepo := &stubBookingRepo{}
	svc := &DefaultBookingSessionService{
		ServiceRepo: &stubServiceRepo{svc: bookableTestService()},
		BookingRepo: bkRepo,
	}
	return svc, bkRepo
}

func TestStartSession(t *testing.T) {
	svc, _ := newSessionTestService(t)

	t.Run("opens with an empty selection and unmet required group", func(t *testing.T) {
		view, err := svc.StartSession("svc-1", "user-1")
		require.NoError(t, err)
		assert.NotEmpty(t, view.SessionID)
		assert.Empty(t, view.SelectedIDs)
		assert.False(t, view.CanSubmit)
		assert.Equal(t, []string{"Size"}, view.MissingGroups)
		assert.Equal(t, 5.0, view.Price.Total)
	})

	t.Run("rejects an inactive service", func(t *testing.T) {
		inactive := bookableTestService()
		inactive.ID = "svc-off"
		inactive.IsActive = false
		off := &DefaultBookingSessionService{
			ServiceRepo: &stubServiceRepo{svc: inactive},
			BookingRepo: &stubBookingRepo{},
		}
		_, err := off.StartSession("svc-off", "user-1")
		assert.Error(t, err)
	})
}

func TestApplySelectionSession(t *testing.T) {
	svc, _ := newSessionTestService(t)

	view, err := svc.StartSession("svc-1", "user-1")
	require.NoError(t, err)
	sessionID := view.SessionID

	t.Run("group selection reprices and unlocks submission", func(t *testing.T) {
		view, err := svc.ApplySelection(sessionID, "user-1", models.SelectionInput{GroupID: "grp-size", OptionID: "opt-large"})
		require.NoError(t, err)
		assert.Equal(t, []string{"opt-large"}, view.SelectedIDs)
		assert.InDelta(t, 7.0, view.Price.Total, 1e-9)
		assert.True(t, view.CanSubmit)
	})

	t.Run("rejects an option routed through another group", func(t *testing.T) {
		_, err := svc.ApplySelection(sessionID, "user-1", models.SelectionInput{GroupID: "grp-extras", OptionID: "opt-small"})
		require.Error(t, err)

		// The single-type size group still holds exactly one option.
		view, err := svc.ApplySelection(sessionID, "user-1", models.SelectionInput{GroupID: "grp-extras", OptionID: "opt-scrub"})
		require.NoError(t, err)
		assert.Equal(t, []string{"opt-large", "opt-scrub"}, view.SelectedIDs)
	})

	t.Run("rejects a grouped option on the flat addon path", func(t *testing.T) {
		_, err := svc.ApplySelection(sessionID, "user-1", models.SelectionInput{OptionID: "opt-small"})
		assert.Error(t, err)
	})

	t.Run("rejects an unknown group", func(t *testing.T) {
		_, err := svc.ApplySelection(sessionID, "user-1", models.SelectionInput{GroupID: "grp-ghost", OptionID: "opt-large"})
		assert.Error(t, err)
	})

	t.Run("rejects another user's session", func(t *testing.T) {
		_, err := svc.ApplySelection(sessionID, "user-2", models.SelectionInput{GroupID: "grp-size", OptionID: "opt-small"})
		assert.Error(t, err)
	})
}

func TestQuotePackageSession(t *testing.T) {
	svc, _ := newSessionTestService(t)

	view, err := svc.StartSession("svc-1", "user-1")
	require.NoError(t, err)
	sessionID := view.SessionID

	_, err = svc.ApplySelection(sessionID, "user-1", models.SelectionInput{GroupID: "grp-size", OptionID: "opt-large"})
	require.NoError(t, err)

	t.Run("holds the quote for the current per-session total", func(t *testing.T) {
		view, err := svc.QuotePackage(sessionID, "user-1", "pkg-5")
		require.NoError(t, err)
		require.NotNil(t, view.PendingPackage)
		assert.InDelta(t, 35.0, view.PendingPackage.Quote.OriginalTotal, 1e-9)
		assert.InDelta(t, 31.5, view.PendingPackage.Quote.FinalTotal, 1e-9)
	})

	t.Run("any selection mutation drops the pending quote", func(t *testing.T) {
		view, err := svc.ApplySelection(sessionID, "user-1", models.SelectionInput{GroupID: "grp-extras", OptionID: "opt-scrub"})
		require.NoError(t, err)
		assert.Nil(t, view.PendingPackage)
	})

	t.Run("unknown package is rejected", func(t *testing.T) {
		_, err := svc.QuotePackage(sessionID, "user-1", "pkg-ghost")
		assert.Error(t, err)
	})

	t.Run("clearing discards the quote without booking", func(t *testing.T) {
		_, err := svc.QuotePackage(sessionID, "user-1", "pkg-5")
		require.NoError(t, err)
		view, err := svc.ClearPendingPackage(sessionID, "user-1")
		require.NoError(t, err)
		assert.Nil(t, view.PendingPackage)
	})
}

func TestConfirmBookingSession(t *testing.T) {
	confirmInput := models.ConfirmInput{Date: "2026-09-10", Time: "14:00", PaymentMethod: "knet"}

	t.Run("single session books the per-session total", func(t *testing.T) {
		svc, bkRepo := newSessionTestService(t)

		view, err := svc.StartSession("svc-1", "user-1")
		require.NoError(t, err)
		sessionID := view.SessionID

		_, err = svc.ApplySelection(sessionID, "user-1", models.SelectionInput{GroupID: "grp-size", OptionID: "opt-large"})
		require.NoError(t, err)

		booking, err := svc.ConfirmBooking(sessionID, "user-1", confirmInput)
		require.NoError(t, err)
		assert.InDelta(t, 7.0, booking.TotalPrice, 1e-9)
		assert.Nil(t, booking.SubscriptionID)
		require.Len(t, bkRepo.created, 1)

		// One pair per selected grouped option, owned by the right group.
		require.Len(t, booking.Options, 1)
		assert.Equal(t, "grp-size", booking.Options[0].OptionID)
		assert.Equal(t, "opt-large", booking.Options[0].OptionValueID)
	})

	t.Run("confirmed package books the quoted bundle price", func(t *testing.T) {
		svc, bkRepo := newSessionTestService(t)

		view, err := svc.StartSession("svc-1", "user-1")
		require.NoError(t, err)
		sessionID := view.SessionID

		_, err = svc.ApplySelection(sessionID, "user-1", models.SelectionInput{GroupID: "grp-size", OptionID: "opt-large"})
		require.NoError(t, err)
		_, err = svc.QuotePackage(sessionID, "user-1", "pkg-5")
		require.NoError(t, err)

		booking, err := svc.ConfirmBooking(sessionID, "user-1", confirmInput)
		require.NoError(t, err)
		assert.InDelta(t, 31.5, booking.TotalPrice, 1e-9)
		require.NotNil(t, booking.SubscriptionID)
		assert.Equal(t, "pkg-5", *booking.SubscriptionID)
		require.Len(t, bkRepo.created, 1)
		assert.InDelta(t, 31.5, bkRepo.created[0].TotalPrice, 1e-9)
	})

	t.Run("unmet required group blocks confirmation", func(t *testing.T) {
		svc, bkRepo := newSessionTestService(t)

		view, err := svc.StartSession("svc-1", "user-1")
		require.NoError(t, err)

		_, err = svc.ConfirmBooking(view.SessionID, "user-1", confirmInput)
		require.Error(t, err)
		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr))
		assert.Empty(t, bkRepo.created)
	})

	t.Run("session is gone after confirmation", func(t *testing.T) {
		svc, _ := newSessionTestService(t)

		view, err := svc.StartSession("svc-1", "user-1")
		require.NoError(t, err)
		sessionID := view.SessionID

		_, err = svc.ApplySelection(sessionID, "user-1", models.SelectionInput{GroupID: "grp-size", OptionID: "opt-small"})
		require.NoError(t, err)
		_, err = svc.ConfirmBooking(sessionID, "user-1", confirmInput)
		require.NoError(t, err)

		_, err = svc.ConfirmBooking(sessionID, "user-1", confirmInput)
		assert.Error(t, err)
	})
}

func TestCancelSession(t *testing.T) {
	svc, _ := newSessionTestService(t)

	view, err := svc.StartSession("svc-1", "user-1")
	require.NoError(t, err)
	sessionID := view.SessionID

	t.Run("rejects another user", func(t *testing.T) {
		assert.Error(t, svc.CancelSession(sessionID, "user-2"))
	})

	t.Run("drops the session", func(t *testing.T) {
		require.NoError(t, svc.CancelSession(sessionID, "user-1"))
		_, err := svc.ApplySelection(sessionID, "user-1", models.SelectionInput{GroupID: "grp-size", OptionID: "opt-small"})
		assert.Error(t, err)
	})
}
