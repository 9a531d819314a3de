package booking

import "lumea/models"

// BuildBookingRequest assembles the final submission payload. It validates
// the selection first and refuses to build a partial payload while any
// required group is unmet.
//
// The selection is expanded into explicit (group id, option id) pairs by
// walking the catalog's groups in display order. Legacy flat addons have no
// owning group and cannot be expressed in the grouped wire format, so they
// contribute to the price but are dropped from the pair list rather than
// sent malformed. Stale ids are skipped entirely.
func BuildBookingRequest(
	svc *models.Service,
	cat AddonCatalog,
	sel Selection,
	date, timeOfDay, paymentMethod string,
	subscriptionID *string,
) (*models.BookingRequest, error) {
	if missing := MissingRequiredGroups(cat, sel); len(missing) > 0 {
		titles := make([]string, len(missing))
		for i, g := range missing {
			titles[i] = g.Title
		}
		return nil, NewValidationError(titles)
	}

	var options []models.SelectedOption
	for _, g := range cat.Groups() {
		for _, opt := range g.Options {
			if sel.Has(opt.ID) {
				options = append(options, models.SelectedOption{
					OptionID:      g.ID,
					OptionValueID: opt.ID,
				})
			}
		}
	}

	price := ComputePrice(svc.Price, cat, sel)

	return &models.BookingRequest{
		ServiceID:      svc.ID,
		Options:        options,
		SubscriptionID: subscriptionID,
		Date:           date,
		Time:           timeOfDay,
		PaymentMethod:  paymentMethod,
		TotalPrice:     price.Total,
	}, nil
}
