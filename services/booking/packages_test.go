package booking

import (
	"testing"

	"lumea/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePackage(t *testing.T) {
	t.Run("percentage discount over the session count", func(t *testing.T) {
		pkg := models.PackageOption{ID: "pkg-4", SessionsCount: 4, DiscountPercent: 20}
		quote, err := EvaluatePackage(10.0, pkg)
		require.NoError(t, err)

		assert.InDelta(t, 40.0, quote.OriginalTotal, 1e-9)
		assert.InDelta(t, 8.0, quote.DiscountAmount, 1e-9)
		assert.InDelta(t, 32.0, quote.FinalTotal, 1e-9)
	})

	t.Run("fixed price overrides any percentage", func(t *testing.T) {
		pkg := models.PackageOption{ID: "pkg-fix", SessionsCount: 3, DiscountPercent: 50, FixedPrice: 5.0}
		quote, err := EvaluatePackage(10.0, pkg)
		require.NoError(t, err)

		assert.Equal(t, 5.0, quote.FinalTotal)
		assert.InDelta(t, 25.0, quote.DiscountAmount, 1e-9)
	})

	t.Run("fixed price above the original keeps a negative discount", func(t *testing.T) {
		pkg := models.PackageOption{ID: "pkg-up", SessionsCount: 2, FixedPrice: 30.0}
		quote, err := EvaluatePackage(10.0, pkg)
		require.NoError(t, err)

		assert.InDelta(t, -10.0, quote.DiscountAmount, 1e-9)
		assert.Equal(t, 0.0, DisplayDiscount(quote))
	})

	t.Run("zero discount percent is a plain multiple", func(t *testing.T) {
		pkg := models.PackageOption{ID: "pkg-flat", SessionsCount: 6}
		quote, err := EvaluatePackage(7.5, pkg)
		require.NoError(t, err)

		assert.InDelta(t, 45.0, quote.OriginalTotal, 1e-9)
		assert.InDelta(t, 45.0, quote.FinalTotal, 1e-9)
		assert.Equal(t, 0.0, quote.DiscountAmount)
	})

	t.Run("rejects a non-positive session count", func(t *testing.T) {
		for _, count := range []int{0, -1} {
			pkg := models.PackageOption{ID: "pkg-bad", SessionsCount: count}
			_, err := EvaluatePackage(10.0, pkg)
			assert.Error(t, err)
		}
	})

	t.Run("rejects a negative per-session total", func(t *testing.T) {
		pkg := models.PackageOption{ID: "pkg-ok", SessionsCount: 2}
		_, err := EvaluatePackage(-1.0, pkg)
		assert.Error(t, err)
	})
}

func TestDisplayDiscount(t *testing.T) {
	assert.Equal(t, 3.5, DisplayDiscount(models.PackageQuote{DiscountAmount: 3.5}))
	assert.Equal(t, 0.0, DisplayDiscount(models.PackageQuote{DiscountAmount: -2}))
}
