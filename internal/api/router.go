package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"globetrotter/docs"
	"globetrotter/internal/api/controllers"
	"globetrotter/internal/models/db_models"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/middleware"
	"globetrotter/pkg/utils"
)

// Dependencies is everything NewRouter needs. Redis may be nil; rate
// limiting is then skipped.
type Dependencies struct {
	Logger           *zap.Logger
	JWT              *utils.JWTManager
	Store            mem.Store
	Redis            *redis.Client
	RateLimitRPS     int
	CORSAllowOrigins []string

	Accounts  *controllers.AccountController
	Geo       *controllers.GeoController
	Trips     *controllers.TripController
	Itinerary *controllers.ItineraryController
	Dashboard *controllers.DashboardController
	Health    *controllers.HealthController
}

// NewRouter builds the gin engine with the global middleware chain and every
// route of the API.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORSMiddleware(deps.CORSAllowOrigins))
	if deps.Redis != nil && deps.RateLimitRPS > 0 {
		r.Use(middleware.RateLimitMiddleware(deps.Redis, deps.RateLimitRPS))
	}

	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	r.GET("/health", deps.Health.Health)

	RegisterRoutes(r, deps)

	return r
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	auth := middleware.JWTAuthMiddleware(deps.JWT, deps.Store)

	apiGroup := r.Group("/api")
	apiGroup.GET("/health", deps.Health.Health)

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", deps.Accounts.Register)
	authGroup.POST("/login", deps.Accounts.Login)
	authGroup.GET("/profile", auth, deps.Accounts.GetProfile)
	authGroup.PUT("/profile", auth, deps.Accounts.UpdateProfile)
	authGroup.POST("/logout", auth, deps.Accounts.Logout)

	apiGroup.GET("/states", deps.Geo.GetStates)
	apiGroup.GET("/cities/:state", deps.Geo.GetCitiesByState)

	tripsGroup := apiGroup.Group("/trips", auth)
	tripsGroup.GET("", deps.Trips.GetTrips)
	tripsGroup.POST("", deps.Trips.CreateTrip)
	tripsGroup.GET("/:tripId", deps.Trips.GetTripDetails)
	tripsGroup.DELETE("/:tripId", deps.Trips.DeleteTrip)
	tripsGroup.GET("/:tripId/sections", deps.Itinerary.GetSections)
	tripsGroup.POST("/:tripId/sections", deps.Itinerary.SaveSections)

	adminGroup := apiGroup.Group("/admin", auth, middleware.RoleMiddleware(db_models.RoleAdmin))
	adminGroup.GET("/accounts", deps.Accounts.GetAllAccounts)
	adminGroup.GET("/dashboard", deps.Dashboard.GetDashboard)
}
