package booking

import "lumea/models"

// catalogEntry is one selectable extra in normalized form. GroupID is empty
// for legacy flat addons, which have no owning group.
type catalogEntry struct {
	OptionID string
	GroupID  string
	Price    float64
}

// AddonCatalog is the normalized view of a service's selectable extras.
// Legacy flat addons and grouped options are folded into a single index so
// pricing and validation operate on one shape only.
type AddonCatalog struct {
	entries map[string]catalogEntry
	groups  []models.AddonGroup
}

// BuildCatalog normalizes a service's addons and addon groups. Inactive
// legacy addons are excluded; their ids behave like stale selections.
func BuildCatalog(svc *models.Service) AddonCatalog {
	cat := AddonCatalog{
		entries: make(map[string]catalogEntry),
		groups:  svc.AddonGroups,
	}

	for _, a := range svc.Addons {
		if !a.Active {
			continue
		}
		cat.entries[a.ID] = catalogEntry{OptionID: a.ID, Price: a.Price}
	}

	for _, g := range svc.AddonGroups {
		for _, opt := range g.Options {
			cat.entries[opt.ID] = catalogEntry{
				OptionID: opt.ID,
				GroupID:  g.ID,
				Price:    opt.Price,
			}
		}
	}

	return cat
}

// Groups returns the catalog's addon groups in display order.
func (c AddonCatalog) Groups() []models.AddonGroup {
	return c.groups
}

// Group returns the addon group with the given id.
func (c AddonCatalog) Group(id string) (models.AddonGroup, bool) {
	for _, g := range c.groups {
		if g.ID == id {
			return g, true
		}
	}
	return models.AddonGroup{}, false
}

// GroupOf returns the id of the group that owns the given option, or an
// empty string for legacy flat addons and stale ids.
func (c AddonCatalog) GroupOf(id string) string {
	return c.entries[id].GroupID
}

// Has reports whether the id refers to a live addon or option.
func (c AddonCatalog) Has(id string) bool {
	_, ok := c.entries[id]
	return ok
}

// priceOf returns the price increment for an id, or 0 if the id is stale.
func (c AddonCatalog) priceOf(id string) float64 {
	return c.entries[id].Price
}
