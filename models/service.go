package models

import "time"

// Addon group selection cardinality.
const (
	GroupTypeSingle = "single"
	GroupTypeMulti  = "multi"
)

// Category groups services for the browse surface.
type Category struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Icon      string `bson:"icon" json:"icon,omitempty"`
	SortOrder int    `bson:"sort_order" json:"sort_order"`
}

// Service is a bookable salon service. Addons is the legacy flat list of
// extras; newer catalog entries carry AddonGroups instead. Both shapes may
// coexist on one service.
type Service struct {
	ID             string          `bson:"id" json:"id"`
	SalonID        string          `bson:"salon_id" json:"salon_id"`
	CategoryID     string          `bson:"category_id" json:"category_id"`
	Name           string          `bson:"name" json:"name"`
	Description    string          `bson:"description" json:"description,omitempty"`
	Price          float64         `bson:"price" json:"price"` // base per-session price
	Currency       string          `bson:"currency" json:"currency"`
	DurationMins   int             `bson:"duration_mins" json:"duration_mins"`
	ImageURLs      []string        `bson:"image_urls" json:"image_urls,omitempty"`
	Addons         []Addon         `bson:"addons,omitempty" json:"addons,omitempty"`
	AddonGroups    []AddonGroup    `bson:"addon_groups,omitempty" json:"addon_groups,omitempty"`
	PackageOptions []PackageOption `bson:"package_options,omitempty" json:"package_options,omitempty"`
	IsActive       bool            `bson:"is_active" json:"is_active"`
	SortOrder      int             `bson:"sort_order" json:"sort_order"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at" json:"updated_at"`
}

// Addon is a legacy flat extra: individually toggleable, never required.
type Addon struct {
	ID          string  `bson:"id" json:"id"`
	Label       string  `bson:"label" json:"label"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price"` // non-negative increment
	Active      bool    `bson:"active" json:"active"`
}

// AddonGroup is a named set of options with single or multi cardinality.
// A required group must have at least one selected option before checkout.
type AddonGroup struct {
	ID       string        `bson:"id" json:"id"`
	Title    string        `bson:"title" json:"title"`
	Type     string        `bson:"type" json:"type"` // "single" or "multi"
	Required bool          `bson:"required" json:"required"`
	Options  []AddonOption `bson:"options" json:"options"`
}

// AddonOption belongs to exactly one group. IDs are unique across the whole
// catalog and are used directly as selection-set members.
type AddonOption struct {
	ID          string  `bson:"id" json:"id"`
	Label       string  `bson:"label" json:"label"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price"` // non-negative increment
}

// PackageOption is a multi-session bundle. FixedPrice > 0 overrides the
// percentage computation entirely; zero means "use DiscountPercent".
// A genuinely free package cannot be modeled with this sentinel.
type PackageOption struct {
	ID              string  `bson:"id" json:"id"`
	Title           string  `bson:"title" json:"title"`
	SessionsCount   int     `bson:"sessions_count" json:"sessions_count"`
	DiscountPercent float64 `bson:"discount_percent" json:"discount_percent"`
	FixedPrice      float64 `bson:"fixed_price" json:"fixed_price"`
	ValidityDays    int     `bson:"validity_days" json:"validity_days"`
	Subscription    bool    `bson:"subscription" json:"subscription"`
	SortOrder       int     `bson:"sort_order" json:"sort_order"`
}

// PriceBreakdown is the itemized result of pricing one configured session.
type PriceBreakdown struct {
	Base        float64 `json:"base"`
	AddonsTotal float64 `json:"addons_total"`
	Total       float64 `json:"total"`
}

// PackageQuote is the evaluated price of a package against the current
// per-session total. DiscountAmount keeps its true value even when negative
// (fixed price above the computed original); display clamping is the
// presentation layer's call.
type PackageQuote struct {
	OriginalTotal  float64 `json:"original_total"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalTotal     float64 `json:"final_total"`
}
