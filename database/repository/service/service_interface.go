package serviceRepo

import "lumea/models"

// ServiceRepository defines methods for catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// List retrieves services, optionally filtered by category. When
	// activeOnly is set, inactive services are excluded.
	List(categoryID string, activeOnly bool) ([]models.Service, error)
	// Create inserts a new service record.
	Create(svc *models.Service) error
	// Update modifies an existing service record.
	Update(svc *models.Service) error
	// Delete removes a service record by its ID.
	Delete(id string) error
	// SetActive flips the active flag on a service.
	SetActive(id string, active bool) error
	// AppendImageURL adds an uploaded gallery image URL to a service.
	AppendImageURL(id string, url string) error

	// CreateCategory inserts a new category.
	CreateCategory(cat *models.Category) error
	// ListCategories retrieves all categories ordered for display.
	ListCategories() ([]models.Category, error)
	// DeleteCategory removes a category by its ID.
	DeleteCategory(id string) error
}
