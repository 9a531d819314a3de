package booking

import (
	"strconv"

	"lumea/models"
)

// ComputePrice prices one configured session: the base price plus the
// increments of every selected id still present in the catalog. Selected ids
// with no live catalog entry are silently ignored; they are expected after a
// catalog reload and must not fail the computation.
func ComputePrice(basePrice float64, cat AddonCatalog, sel Selection) models.PriceBreakdown {
	addonsTotal := 0.0
	for id := range sel {
		if cat.Has(id) {
			addonsTotal += cat.priceOf(id)
		}
	}
	return models.PriceBreakdown{
		Base:        basePrice,
		AddonsTotal: addonsTotal,
		Total:       basePrice + addonsTotal,
	}
}

// FormatPrice renders an amount with the fixed 3-decimal precision used for
// KWD display. This is the single rounding point for the whole app.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// FormatDisplayPrice renders an amount with its currency code appended.
func FormatDisplayPrice(v float64, currency string) string {
	return FormatPrice(v) + " " + currency
}
