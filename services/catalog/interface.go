package catalog

import (
	serviceRepo "lumea/database/repository/service"
	"lumea/models"
)

// CatalogService exposes the browse surface and the admin CRUD over salon
// services and categories.
type CatalogService interface {
	// Browse (public, cached).
	GetLookups() (*models.CatalogLookups, error)
	ListServices(categoryID string) ([]models.Service, error)
	GetService(id string) (*models.Service, error)

	// Admin CRUD. Writes invalidate the lookup cache.
	CreateService(svc *models.Service) (*models.Service, error)
	UpdateService(svc *models.Service) (*models.Service, error)
	DeleteService(id string) error
	SetServiceActive(id string, active bool) error
	AddServiceImage(id string, url string) error
	CreateCategory(cat *models.Category) (*models.Category, error)
	DeleteCategory(id string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}
