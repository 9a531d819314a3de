package booking

import (
	"testing"

	"lumea/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyGroupSelection(t *testing.T) {
	svc := testService()
	cat := BuildCatalog(svc)
	sizeGroup, _ := cat.Group("grp-size")
	extrasGroup, _ := cat.Group("grp-extras")

	t.Run("single group keeps at most one option selected", func(t *testing.T) {
		sel := NewSelection()
		sel = ApplyGroupSelection(sel, sizeGroup, "opt-small")
		sel = ApplyGroupSelection(sel, sizeGroup, "opt-large")
		sel = ApplyGroupSelection(sel, sizeGroup, "opt-small")

		assert.True(t, sel.Has("opt-small"))
		assert.False(t, sel.Has("opt-large"))

		count := 0
		for _, opt := range sizeGroup.Options {
			if sel.Has(opt.ID) {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("single group replacement leaves other groups untouched", func(t *testing.T) {
		sel := SelectionFromIDs([]string{"opt-scrub", "addon-mask"})
		sel = ApplyGroupSelection(sel, sizeGroup, "opt-large")

		assert.True(t, sel.Has("opt-scrub"))
		assert.True(t, sel.Has("addon-mask"))
		assert.True(t, sel.Has("opt-large"))
	})

	t.Run("multi group toggle is idempotent over two taps", func(t *testing.T) {
		sel := SelectionFromIDs([]string{"opt-small"})
		sel = ApplyGroupSelection(sel, extrasGroup, "opt-serum")
		assert.True(t, sel.Has("opt-serum"))

		sel = ApplyGroupSelection(sel, extrasGroup, "opt-serum")
		assert.False(t, sel.Has("opt-serum"))
		assert.Equal(t, []string{"opt-small"}, sel.IDs())
	})

	t.Run("option from another group is ignored", func(t *testing.T) {
		sel := SelectionFromIDs([]string{"opt-large"})
		// opt-small belongs to grp-size; applying it under the extras
		// group must not sneak a second size option in.
		sel = ApplyGroupSelection(sel, extrasGroup, "opt-small")

		assert.False(t, sel.Has("opt-small"))
		assert.Equal(t, []string{"opt-large"}, sel.IDs())
	})

	t.Run("mutators never modify the input selection", func(t *testing.T) {
		orig := SelectionFromIDs([]string{"opt-small"})
		_ = ApplyGroupSelection(orig, sizeGroup, "opt-large")
		_ = ToggleAddon(orig, "addon-mask")

		assert.Equal(t, []string{"opt-small"}, orig.IDs())
	})
}

func TestToggleAddon(t *testing.T) {
	sel := NewSelection()
	sel = ToggleAddon(sel, "addon-mask")
	assert.True(t, sel.Has("addon-mask"))

	sel = ToggleAddon(sel, "addon-mask")
	assert.False(t, sel.Has("addon-mask"))
	assert.Empty(t, sel.IDs())
}

func TestBuildCatalog(t *testing.T) {
	svc := testService()
	cat := BuildCatalog(svc)

	t.Run("indexes grouped options and active flat addons", func(t *testing.T) {
		assert.True(t, cat.Has("opt-small"))
		assert.True(t, cat.Has("opt-serum"))
		assert.True(t, cat.Has("addon-mask"))
	})

	t.Run("excludes inactive legacy addons", func(t *testing.T) {
		assert.False(t, cat.Has("addon-retired"))
	})

	t.Run("preserves group display order", func(t *testing.T) {
		groups := cat.Groups()
		assert.Equal(t, []string{"grp-size", "grp-extras"}, []string{groups[0].ID, groups[1].ID})
	})

	t.Run("empty service yields an empty catalog", func(t *testing.T) {
		empty := BuildCatalog(&models.Service{ID: "bare"})
		assert.Empty(t, empty.Groups())
		assert.False(t, empty.Has("anything"))
	})
}
