package handlers

import (
	"net/http"

	"lumea/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the public browse surface.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: cs}
}

// GetLookupsHandler returns the startup hydration payload (categories plus
// active services), served from cache when warm.
func (h *CatalogHandler) GetLookupsHandler(c *gin.Context) {
	lookups, err := h.Catalog.GetLookups()
	if err != nil {
		zap.L().Error("Failed to fetch catalog lookups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
		return
	}
	c.JSON(http.StatusOK, lookups)
}

// ListServicesHandler lists active services, optionally by category.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Catalog.ListServices(c.Query("categoryId"))
	if err != nil {
		zap.L().Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler returns one service with its full addon and package
// definitions.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.GetService(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}
