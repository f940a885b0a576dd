package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/estately/listings-api/internal/api/handler"
	"github.com/estately/listings-api/internal/api/middleware"
	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

// Deps bundles everything the router needs. Services are constructed in
// main so the notification dispatcher can share them.
type Deps struct {
	Auth          ports.AuthService
	Tokens        ports.TokenService
	Users         ports.UserRepository
	Properties    ports.PropertyService
	PropertyRepo  ports.PropertyRepository
	Reviews       ports.ReviewService
	Likes         ports.LikeService
	Notifications ports.NotificationService

	Cookies handler.CookieConfig

	MongoDB *mongo.Database
	Redis   *redis.Client
	Log     zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("listings"))

	auth := middleware.Auth(deps.Tokens, deps.Users)
	ownerOnly := middleware.RBAC(domain.RoleOwner)
	ownsProperty := middleware.Ownership(deps.PropertyRepo)

	authHandler := handler.NewAuthHandler(deps.Auth, deps.Tokens, deps.Cookies)
	propertyHandler := handler.NewPropertyHandler(deps.Properties)
	reviewHandler := handler.NewReviewHandler(deps.Reviews)
	likeHandler := handler.NewLikeHandler(deps.Likes)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)

	v1 := e.Group("/api/v1")

	users := v1.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/refresh-token", authHandler.Refresh)
	users.POST("/logout", authHandler.Logout, auth)
	users.POST("/change-password", authHandler.ChangePassword, auth)
	users.GET("/me", authHandler.Me, auth)
	users.PATCH("/me", authHandler.UpdateProfile, auth)
	users.PATCH("/me/profile-image", authHandler.UpdateProfileImage, auth)

	properties := v1.Group("/properties", auth)
	properties.POST("", propertyHandler.Create, ownerOnly)
	properties.GET("", propertyHandler.List)
	properties.GET("/mine", propertyHandler.Mine, ownerOnly)
	properties.GET("/:id", propertyHandler.Get)
	properties.PATCH("/:id", propertyHandler.Update, ownerOnly, ownsProperty)
	properties.DELETE("/:id", propertyHandler.Delete, ownerOnly, ownsProperty)
	properties.PATCH("/:id/images", propertyHandler.AddImages, ownerOnly, ownsProperty)
	properties.DELETE("/:id/images", propertyHandler.RemoveImages, ownerOnly, ownsProperty)
	properties.PATCH("/:id/videos", propertyHandler.AddVideos, ownerOnly, ownsProperty)
	properties.DELETE("/:id/videos", propertyHandler.RemoveVideos, ownerOnly, ownsProperty)
	properties.GET("/:id/views", propertyHandler.Views, ownerOnly, ownsProperty)
	properties.GET("/:id/visitors", propertyHandler.Visitors, ownerOnly, ownsProperty)

	reviews := v1.Group("/reviews", auth)
	reviews.GET("/property/:id", reviewHandler.List)
	reviews.POST("/property/:id", reviewHandler.Add)
	reviews.DELETE("/mine/:id", reviewHandler.Delete)
	reviews.DELETE("/:id", reviewHandler.Moderate, ownerOnly)

	likes := v1.Group("/likes", auth)
	likes.POST("/property/:id", likeHandler.Toggle)
	likes.GET("/mine", likeHandler.Liked)

	notifications := v1.Group("/notifications", auth, ownerOnly)
	notifications.GET("", notificationHandler.List)
	notifications.POST("/read", notificationHandler.MarkAllRead)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.MongoDB, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
