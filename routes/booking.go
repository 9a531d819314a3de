package routes

import (
	"lumea/handlers"
	"lumea/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	booking.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		// Phase 1: open a session for a service.
		booking.POST("/session", hb.Booking.StartSessionHandler)
		// Phase 2: mutate the selection and reprice.
		booking.PUT("/session/:sessionID/select", hb.Booking.SelectHandler)
		// Optional: quote a package; held pending until confirmed or dismissed.
		booking.POST("/session/:sessionID/package", hb.Booking.QuotePackageHandler)
		booking.DELETE("/session/:sessionID/package", hb.Booking.DismissPackageHandler)
		// Phase 3: confirm the booking.
		booking.POST("/session/:sessionID/confirm", hb.Booking.ConfirmHandler)
		booking.DELETE("/session/:sessionID", hb.Booking.CancelSessionHandler)
	}
}
