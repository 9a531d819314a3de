package routes

import (
	"net/http"
	"time"

	"lumea/handlers"
	"lumea/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public browse surface.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/lookups", hb.Catalog.GetLookupsHandler)
		api.GET("/services", hb.Catalog.ListServicesHandler)
		api.GET("/services/:id", hb.Catalog.GetServiceHandler)
	}
}

// RegisterUserRoutes registers account, favourites, and history endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.SignInHandler)
	}

	protected := r.Group("/api/users")
	protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		protected.POST("/logout", hb.User.SignOutHandler)
		protected.GET("/me", hb.User.MeHandler)
		protected.GET("/me/bookings", hb.User.MyBookingsHandler)
		protected.GET("/me/favorites", hb.User.ListFavoritesHandler)
		protected.PUT("/me/favorites/:serviceID", hb.User.AddFavoriteHandler)
		protected.DELETE("/me/favorites/:serviceID", hb.User.RemoveFavoriteHandler)
	}
}

// RegisterAdminRoutes registers the admin dashboard surface.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		staff := adminGroup.Group("")
		staff.Use(middleware.StaffOrAdmin())
		{
			staff.GET("/bookings", hb.Admin.ListBookingsHandler)
			staff.PATCH("/bookings/:id/status", hb.Admin.UpdateBookingStatusHandler)
		}

		admin := adminGroup.Group("")
		admin.Use(middleware.AdminOnly())
		{
			admin.POST("/services", hb.Admin.CreateServiceHandler)
			admin.PUT("/services/:id", hb.Admin.UpdateServiceHandler)
			admin.DELETE("/services/:id", hb.Admin.DeleteServiceHandler)
			admin.PATCH("/services/:id/active", hb.Admin.SetServiceActiveHandler)
			admin.POST("/services/:id/images", hb.Storage.UploadServiceImageHandler)
			admin.POST("/categories", hb.Admin.CreateCategoryHandler)
			admin.DELETE("/categories/:id", hb.Admin.DeleteCategoryHandler)
			admin.GET("/users", hb.Admin.GetAllUsersHandler)
			admin.PATCH("/users/:id/role", hb.Admin.SetUserRoleHandler)
			admin.DELETE("/users/:id", hb.Admin.DeleteUserHandler)
		}
	}
}

// RegisterHealthRoute exposes a liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
