package catalog

import (
	"fmt"

	"lumea/models"

	"github.com/google/uuid"
)

// CreateService assigns ids to the service and its nested addon structures,
// then persists it. Option ids must be unique across the whole catalog, so
// every generated id is a fresh UUID.
func (s *DefaultCatalogService) CreateService(svc *models.Service) (*models.Service, error) {
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if svc.Price < 0 {
		return nil, fmt.Errorf("service price must not be negative")
	}
	if err := validateAddonShapes(svc); err != nil {
		return nil, err
	}

	svc.ID = uuid.New().String()
	assignAddonIDs(svc)

	if err := s.Repo.Create(svc); err != nil {
		return nil, err
	}
	s.invalidateLookups()
	return svc, nil
}

// UpdateService replaces an existing service definition. Addon entries
// without ids (newly added in the admin form) get fresh ones.
func (s *DefaultCatalogService) UpdateService(svc *models.Service) (*models.Service, error) {
	if svc.ID == "" {
		return nil, fmt.Errorf("service id is required")
	}
	if svc.Price < 0 {
		return nil, fmt.Errorf("service price must not be negative")
	}
	if err := validateAddonShapes(svc); err != nil {
		return nil, err
	}

	assignAddonIDs(svc)

	if err := s.Repo.Update(svc); err != nil {
		return nil, err
	}
	s.invalidateLookups()
	return svc, nil
}

// DeleteService removes a service from the catalog.
func (s *DefaultCatalogService) DeleteService(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateLookups()
	return nil
}

// SetServiceActive flips a service's availability.
func (s *DefaultCatalogService) SetServiceActive(id string, active bool) error {
	if err := s.Repo.SetActive(id, active); err != nil {
		return err
	}
	s.invalidateLookups()
	return nil
}

// AddServiceImage appends an uploaded gallery image URL.
func (s *DefaultCatalogService) AddServiceImage(id string, url string) error {
	if err := s.Repo.AppendImageURL(id, url); err != nil {
		return err
	}
	s.invalidateLookups()
	return nil
}

// CreateCategory persists a new category.
func (s *DefaultCatalogService) CreateCategory(cat *models.Category) (*models.Category, error) {
	if cat.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	cat.ID = uuid.New().String()
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	s.invalidateLookups()
	return cat, nil
}

// DeleteCategory removes a category.
func (s *DefaultCatalogService) DeleteCategory(id string) error {
	if err := s.Repo.DeleteCategory(id); err != nil {
		return err
	}
	s.invalidateLookups()
	return nil
}

// ListServices reads straight from the repository (admin listings and
// category pages; the cached path is GetLookups).
func (s *DefaultCatalogService) ListServices(categoryID string) ([]models.Service, error) {
	return s.Repo.List(categoryID, true)
}

// GetService retrieves one service by id.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	return s.Repo.GetByID(id)
}

// validateAddonShapes rejects catalog data the pricing engine cannot price
// sanely: negative increments, unknown group types, or packages with a
// non-positive session count.
func validateAddonShapes(svc *models.Service) error {
	for _, a := range svc.Addons {
		if a.Price < 0 {
			return fmt.Errorf("addon %q has a negative price", a.Label)
		}
	}
	for _, g := range svc.AddonGroups {
		if g.Type != models.GroupTypeSingle && g.Type != models.GroupTypeMulti {
			return fmt.Errorf("addon group %q has unknown type %q", g.Title, g.Type)
		}
		for _, opt := range g.Options {
			if opt.Price < 0 {
				return fmt.Errorf("option %q has a negative price", opt.Label)
			}
		}
	}
	for _, p := range svc.PackageOptions {
		if p.SessionsCount <= 0 {
			return fmt.Errorf("package %q must have a positive sessions count", p.Title)
		}
		if p.FixedPrice < 0 || p.DiscountPercent < 0 {
			return fmt.Errorf("package %q has negative pricing fields", p.Title)
		}
	}
	return nil
}

func assignAddonIDs(svc *models.Service) {
	for i := range svc.Addons {
		if svc.Addons[i].ID == "" {
			svc.Addons[i].ID = uuid.New().String()
		}
	}
	for i := range svc.AddonGroups {
		g := &svc.AddonGroups[i]
		if g.ID == "" {
			g.ID = uuid.New().String()
		}
		for j := range g.Options {
			if g.Options[j].ID == "" {
				g.Options[j].ID = uuid.New().String()
			}
		}
	}
	for i := range svc.PackageOptions {
		if svc.PackageOptions[i].ID == "" {
			svc.PackageOptions[i].ID = uuid.New().String()
		}
	}
}
