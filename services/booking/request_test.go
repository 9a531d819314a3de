package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBookingRequest(t *testing.T) {
	svc := testService()
	cat := BuildCatalog(svc)

	t.Run("refuses to build while a required group is unmet", func(t *testing.T) {
		req, err := BuildBookingRequest(svc, cat, NewSelection(), "2026-09-01", "14:30", "cash", nil)
		require.Error(t, err)
		assert.Nil(t, req)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"Size"}, vErr.MissingGroups)
	})

	t.Run("expands the selection into group and option id pairs", func(t *testing.T) {
		sel := SelectionFromIDs([]string{"opt-large", "opt-serum"})
		req, err := BuildBookingRequest(svc, cat, sel, "2026-09-01", "14:30", "card", nil)
		require.NoError(t, err)

		assert.Equal(t, "svc-1", req.ServiceID)
		assert.Nil(t, req.SubscriptionID)
		assert.Equal(t, "2026-09-01", req.Date)
		assert.Equal(t, "14:30", req.Time)
		assert.Equal(t, "card", req.PaymentMethod)
		assert.InDelta(t, 8.25, req.TotalPrice, 1e-9)

		require.Len(t, req.Options, 2)
		assert.Equal(t, "grp-size", req.Options[0].OptionID)
		assert.Equal(t, "opt-large", req.Options[0].OptionValueID)
		assert.Equal(t, "grp-extras", req.Options[1].OptionID)
		assert.Equal(t, "opt-serum", req.Options[1].OptionValueID)
	})

	t.Run("legacy flat addons price in but stay off the pair list", func(t *testing.T) {
		sel := SelectionFromIDs([]string{"opt-small", "addon-mask"})
		req, err := BuildBookingRequest(svc, cat, sel, "2026-09-02", "10:00", "cash", nil)
		require.NoError(t, err)

		assert.InDelta(t, 6.5, req.TotalPrice, 1e-9)
		for _, pair := range req.Options {
			assert.NotEqual(t, "addon-mask", pair.OptionValueID)
		}
	})

	t.Run("every pair resolves to an option in the catalog", func(t *testing.T) {
		sel := SelectionFromIDs([]string{"opt-large", "opt-scrub", "opt-serum", "stale-id"})
		req, err := BuildBookingRequest(svc, cat, sel, "2026-09-03", "16:00", "card", nil)
		require.NoError(t, err)
		require.NotEmpty(t, req.ServiceID)

		for _, pair := range req.Options {
			assert.True(t, cat.Has(pair.OptionValueID), "pair references unknown option %s", pair.OptionValueID)
			group, ok := cat.Group(pair.OptionID)
			assert.True(t, ok, "pair references unknown group %s", pair.OptionID)
			found := false
			for _, opt := range group.Options {
				if opt.ID == pair.OptionValueID {
					found = true
				}
			}
			assert.True(t, found, "option %s does not belong to group %s", pair.OptionValueID, pair.OptionID)
		}
	})

	t.Run("carries the confirmed package id", func(t *testing.T) {
		sel := SelectionFromIDs([]string{"opt-small"})
		pkgID := "pkg-4"
		req, err := BuildBookingRequest(svc, cat, sel, "2026-09-04", "12:00", "card", &pkgID)
		require.NoError(t, err)
		require.NotNil(t, req.SubscriptionID)
		assert.Equal(t, "pkg-4", *req.SubscriptionID)
	})
}
