package routes

import (
	"time"

	"bizschool/config"
	"bizschool/handlers"
	"bizschool/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// HandlerBundle aggregates the wired handlers for route registration.
type HandlerBundle struct {
	Booking  *handlers.BookingHandler
	Programs *handlers.ProgramHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://j-globalbizschool.com", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "x-locale"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.LocaleMiddleware())

	r.GET("/health", handlers.HealthHandler)

	RegisterCoachingRoutes(r, hb)
	RegisterProgramRoutes(r, hb)
}

// RegisterCoachingRoutes registers the free-coaching booking endpoints.
// Availability queries get a generous per-IP budget; booking submissions a
// strict one.
func RegisterCoachingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/coaching")
	{
		availabilityLimit := rate.Every(time.Minute / time.Duration(config.AppConfig.AvailabilityRequestsPerMin))
		api.POST("/available-slots",
			middleware.RateLimitMiddleware(availabilityLimit, config.AppConfig.AvailabilityRequestsPerMin),
			hb.Booking.AvailableSlotsHandler)

		bookingLimit := rate.Every(time.Hour / time.Duration(config.AppConfig.BookingRequestsPerHour))
		api.POST("/book",
			middleware.RateLimitMiddleware(bookingLimit, config.AppConfig.BookingRequestsPerHour),
			hb.Booking.BookHandler)
	}
}

// RegisterProgramRoutes registers the workshop-records lookup endpoints.
func RegisterProgramRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/programs")
	{
		api.GET("", hb.Programs.ListProgramsHandler)
		api.GET("/:slug", hb.Programs.GetProgramHandler)
	}
}
