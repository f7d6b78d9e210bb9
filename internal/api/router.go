package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contactdesk/contacts-api/internal/api/handler"
	"github.com/contactdesk/contacts-api/internal/api/middleware"
	"github.com/contactdesk/contacts-api/internal/core/service"
	mongodb "github.com/contactdesk/contacts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/contactdesk/contacts-api/internal/infrastructure/db/redis"
	"github.com/contactdesk/contacts-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered. The
// activity dispatcher runs activityWorkers goroutines (0 means the
// dispatcher default) until ctx is cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, activityWorkers int, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("contactbook"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	addressRepo := mongodb.NewAddressRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	dispatcher := queue.NewDispatcher(activityWorkers, activityRepo, log)
	dispatcher.Start(ctx)

	throttle := redisdb.NewLoginThrottle(rdb)

	userService := service.NewUserService(userRepo, throttle, log)
	contactService := service.NewContactService(contactRepo, addressRepo, dispatcher, log)
	addressService := service.NewAddressService(contactRepo, addressRepo, dispatcher, log)

	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)
	addressHandler := handler.NewAddressHandler(addressService)

	authMiddleware := middleware.Auth(userRepo)

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/users", userHandler.Register)
	apiGroup.POST("/users/login", userHandler.Login)

	authed := apiGroup.Group("", authMiddleware)
	authed.GET("/users/current", userHandler.Current)
	authed.PATCH("/users/current", userHandler.Update)
	authed.DELETE("/users/logout", userHandler.Logout)

	authed.POST("/contacts", contactHandler.Create)
	authed.GET("/contacts", contactHandler.Search)
	authed.GET("/contacts/:contactId", contactHandler.Get)
	authed.PUT("/contacts/:contactId", contactHandler.Update)
	authed.DELETE("/contacts/:contactId", contactHandler.Delete)

	authed.POST("/contacts/:contactId/addresses", addressHandler.Create)
	authed.GET("/contacts/:contactId/addresses", addressHandler.List)
	authed.GET("/contacts/:contactId/addresses/:addressId", addressHandler.Get)
	authed.PUT("/contacts/:contactId/addresses/:addressId", addressHandler.Update)
	authed.DELETE("/contacts/:contactId/addresses/:addressId", addressHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
