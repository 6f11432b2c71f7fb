package handler

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter настраивает маршруты и порядок проверок доступа: сначала сессия,
// затем роль, и только потом доменная операция.
func SetupRouter(h *Handler, sessionSecret string) *gin.Engine {
	router := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	router.Use(sessions.Sessions("travelrek_session", store))

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}

	api := router.Group("/api", RequireAuth())
	{
		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.UpdatePassword)

		// Каталог читается любой аутентифицированной ролью.
		api.GET("/packages", h.ListPackages)

		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/my", h.MyBookings)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		admin := api.Group("", RequireAdmin())
		{
			admin.POST("/packages", h.CreatePackage)
			admin.GET("/packages/:id", h.GetPackage)
			admin.PUT("/packages/:id", h.UpdatePackage)
			admin.DELETE("/packages/:id", h.DeletePackage)

			admin.GET("/bookings", h.ListBookings)
			admin.PUT("/bookings/:id/status", h.SetBookingStatus)
		}
	}

	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
