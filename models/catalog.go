package models

// CatalogLookups is the hydration payload the clients fetch on startup:
// every category plus every active service, in display order.
type CatalogLookups struct {
	Categories []Category `json:"categories"`
	Services   []Service  `json:"services"`
}
