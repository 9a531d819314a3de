package booking

import (
	"sort"

	"lumea/models"
)

// Selection is the set of currently chosen addon/option ids for one service
// instance. Membership only; no ordering significance. All mutators return a
// new Selection and leave the receiver untouched.
type Selection map[string]struct{}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return Selection{}
}

// SelectionFromIDs rebuilds a selection from its serialized id list.
func SelectionFromIDs(ids []string) Selection {
	sel := make(Selection, len(ids))
	for _, id := range ids {
		sel[id] = struct{}{}
	}
	return sel
}

// Has reports whether the id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the selected ids sorted for stable serialization.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s Selection) clone() Selection {
	out := make(Selection, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// ApplyGroupSelection applies a tap on an option within a group. For a
// single-type group every sibling is deselected first, so the group ends up
// with exactly the tapped option. For a multi-type group the option is
// toggled and the rest of the selection is untouched. An option that is not
// a member of the group leaves the selection unchanged; applying it under a
// foreign group's semantics could break the group's own constraints.
func ApplyGroupSelection(sel Selection, group models.AddonGroup, optionID string) Selection {
	out := sel.clone()
	if !groupHasOption(group, optionID) {
		return out
	}

	switch group.Type {
	case models.GroupTypeSingle:
		for _, opt := range group.Options {
			delete(out, opt.ID)
		}
		out[optionID] = struct{}{}
	default:
		if out.Has(optionID) {
			delete(out, optionID)
		} else {
			out[optionID] = struct{}{}
		}
	}
	return out
}

func groupHasOption(group models.AddonGroup, optionID string) bool {
	for _, opt := range group.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}

// ToggleAddon toggles a legacy flat addon. Flat addons always use
// multi-select semantics, independent of any group.
func ToggleAddon(sel Selection, addonID string) Selection {
	out := sel.clone()
	if out.Has(addonID) {
		delete(out, addonID)
	} else {
		out[addonID] = struct{}{}
	}
	return out
}
