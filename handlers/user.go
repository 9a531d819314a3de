package handlers

import (
	"net/http"

	bookingRepo "lumea/database/repository/booking"
	"lumea/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler covers account, favourites, and booking history endpoints.
type UserHandler struct {
	Users    user.UserService
	Bookings bookingRepo.BookingRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us user.UserService, br bookingRepo.BookingRepository) *UserHandler {
	return &UserHandler{Users: us, Bookings: br}
}

// RegisterHandler creates a customer account.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var input user.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Users.RegisterUser(input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignInHandler authenticates and returns a token.
func (h *UserHandler) SignInHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Users.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler revokes the current session.
func (h *UserHandler) SignOutHandler(c *gin.Context) {
	if err := h.Users.SignOut(c.GetString("userID")); err != nil {
		zap.L().Error("Failed to sign out", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// MeHandler returns the authenticated user's profile.
func (h *UserHandler) MeHandler(c *gin.Context) {
	u, err := h.Users.GetUserByID(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// ListFavoritesHandler returns the user's favourite service ids.
func (h *UserHandler) ListFavoritesHandler(c *gin.Context) {
	favs, err := h.Users.ListFavorites(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favourites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}

// AddFavoriteHandler adds a service to favourites.
func (h *UserHandler) AddFavoriteHandler(c *gin.Context) {
	if err := h.Users.AddFavorite(c.GetString("userID"), c.Param("serviceID")); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "added"})
}

// RemoveFavoriteHandler removes a service from favourites.
func (h *UserHandler) RemoveFavoriteHandler(c *gin.Context) {
	if err := h.Users.RemoveFavorite(c.GetString("userID"), c.Param("serviceID")); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// MyBookingsHandler lists the user's bookings, newest first.
func (h *UserHandler) MyBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.ListByUser(c.GetString("userID"))
	if err != nil {
		zap.L().Error("Failed to list user bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
