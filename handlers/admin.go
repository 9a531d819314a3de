package handlers

import (
	"net/http"

	bookingRepo "lumea/database/repository/booking"
	"lumea/models"
	"lumea/services/catalog"
	"lumea/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Catalog  catalog.CatalogService
	Users    user.UserService
	Bookings bookingRepo.BookingRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(cs catalog.CatalogService, us user.UserService, br bookingRepo.BookingRepository) *AdminHandler {
	return &AdminHandler{Catalog: cs, Users: us, Bookings: br}
}

// CreateServiceHandler adds a service to the catalog.
func (ah *AdminHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := ah.Catalog.CreateService(&svc)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler replaces a service definition.
func (ah *AdminHandler) UpdateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")

	updated, err := ah.Catalog.UpdateService(&svc)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler removes a service.
func (ah *AdminHandler) DeleteServiceHandler(c *gin.Context) {
	if err := ah.Catalog.DeleteService(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// SetServiceActiveHandler toggles a service's availability.
func (ah *AdminHandler) SetServiceActiveHandler(c *gin.Context) {
	var input struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := ah.Catalog.SetServiceActive(c.Param("id"), *input.Active); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// CreateCategoryHandler adds a category.
func (ah *AdminHandler) CreateCategoryHandler(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := ah.Catalog.CreateCategory(&cat)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteCategoryHandler removes a category.
func (ah *AdminHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := ah.Catalog.DeleteCategory(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListBookingsHandler returns bookings, optionally filtered by date, for the
// admin and team dashboards.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := ah.Bookings.ListAll(c.Query("date"))
	if err != nil {
		zap.L().Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatusHandler transitions a booking (cancel, complete).
func (ah *AdminHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	switch input.Status {
	case models.BookingStatusConfirmed, models.BookingStatusCancelled, models.BookingStatusCompleted:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	if err := ah.Bookings.UpdateStatus(c.Param("id"), input.Status); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// GetAllUsersHandler returns all users.
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.Users.ListUsers()
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetUserRoleHandler promotes or demotes an account.
func (ah *AdminHandler) SetUserRoleHandler(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := ah.Users.SetUserRole(c.Param("id"), input.Role); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteUserHandler removes an account.
func (ah *AdminHandler) DeleteUserHandler(c *gin.Context) {
	if err := ah.Users.DeleteUser(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
