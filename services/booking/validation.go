package booking

import "lumea/models"

// MissingRequiredGroups returns every required group with no selected option.
// All unmet groups are returned so the caller can surface each requirement,
// not just the first.
func MissingRequiredGroups(cat AddonCatalog, sel Selection) []models.AddonGroup {
	var missing []models.AddonGroup
	for _, g := range cat.Groups() {
		if !g.Required {
			continue
		}
		satisfied := false
		for _, opt := range g.Options {
			if sel.Has(opt.ID) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			missing = append(missing, g)
		}
	}
	return missing
}

// CanSubmit reports whether checkout is currently allowed.
func CanSubmit(cat AddonCatalog, sel Selection) bool {
	return len(MissingRequiredGroups(cat, sel)) == 0
}
