package booking

import (
	"testing"

	"lumea/models"

	"github.com/stretchr/testify/assert"
)

func testService() *models.Service {
	return &models.Service{
		ID:       "svc-1",
		Name:     "Hydrating Facial",
		Price:    5.0,
		Currency: "KWD",
		Addons: []models.Addon{
			{ID: "addon-mask", Label: "Collagen Mask", Price: 1.5, Active: true},
			{ID: "addon-retired", Label: "Old Extra", Price: 9.9, Active: false},
		},
		AddonGroups: []models.AddonGroup{
			{
				ID:       "grp-size",
				Title:    "Size",
				Type:     models.GroupTypeSingle,
				Required: true,
				Options: []models.AddonOption{
					{ID: "opt-small", Label: "Small", Price: 0},
					{ID: "opt-large", Label: "Large", Price: 2.0},
				},
			},
			{
				ID:    "grp-extras",
				Title: "Extras",
				Type:  models.GroupTypeMulti,
				Options: []models.AddonOption{
					{ID: "opt-scrub", Label: "Scrub", Price: 0.75},
					{ID: "opt-serum", Label: "Serum", Price: 1.25},
				},
			},
		},
	}
}

func TestComputePrice(t *testing.T) {
	svc := testService()
	cat := BuildCatalog(svc)

	t.Run("empty selection prices the base only", func(t *testing.T) {
		got := ComputePrice(svc.Price, cat, NewSelection())
		assert.Equal(t, 5.0, got.Base)
		assert.Equal(t, 0.0, got.AddonsTotal)
		assert.Equal(t, 5.0, got.Total)
	})

	t.Run("sums grouped options and flat addons", func(t *testing.T) {
		sel := SelectionFromIDs([]string{"opt-large", "opt-scrub", "addon-mask"})
		got := ComputePrice(svc.Price, cat, sel)
		assert.InDelta(t, 4.25, got.AddonsTotal, 1e-9)
		assert.InDelta(t, 9.25, got.Total, 1e-9)
	})

	t.Run("stale ids are silently ignored", func(t *testing.T) {
		with := ComputePrice(svc.Price, cat, SelectionFromIDs([]string{"opt-large", "gone-id"}))
		without := ComputePrice(svc.Price, cat, SelectionFromIDs([]string{"opt-large"}))
		assert.Equal(t, without.Total, with.Total)
	})

	t.Run("inactive legacy addons price as stale", func(t *testing.T) {
		got := ComputePrice(svc.Price, cat, SelectionFromIDs([]string{"addon-retired"}))
		assert.Equal(t, 5.0, got.Total)
	})

	t.Run("adding an option never decreases the total", func(t *testing.T) {
		sel := NewSelection()
		prev := ComputePrice(svc.Price, cat, sel).Total
		for _, id := range []string{"opt-small", "opt-scrub", "opt-serum", "addon-mask"} {
			sel = ToggleAddon(sel, id)
			total := ComputePrice(svc.Price, cat, sel).Total
			assert.GreaterOrEqual(t, total, prev)
			prev = total
		}
	})

	t.Run("required addon scenario from the booking screen", func(t *testing.T) {
		// Base 5.000 KWD, required single group Size with Small(+0) and
		// Large(+2.000). Before any selection checkout is blocked; picking
		// Large allows it at 7.000.
		sel := NewSelection()
		assert.False(t, CanSubmit(cat, sel))

		group, ok := cat.Group("grp-size")
		assert.True(t, ok)
		sel = ApplyGroupSelection(sel, group, "opt-large")

		assert.True(t, CanSubmit(cat, sel))
		assert.InDelta(t, 7.0, ComputePrice(svc.Price, cat, sel).Total, 1e-9)
	})
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "7.000", FormatPrice(7))
	assert.Equal(t, "7.500", FormatPrice(7.5))
	assert.Equal(t, "0.125", FormatPrice(0.125))
	assert.Equal(t, "9.250 KWD", FormatDisplayPrice(9.25, "KWD"))
}
