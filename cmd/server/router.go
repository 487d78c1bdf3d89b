package main

import (
	"context"
	"time"

	"volta-cms/cmd/server/handlers"
	authHandlers "volta-cms/cmd/server/handlers/auth"
	"volta-cms/cmd/server/handlers/httperr"
	sectionHandlers "volta-cms/cmd/server/handlers/sections"
	settingHandlers "volta-cms/cmd/server/handlers/settings"
	userHandlers "volta-cms/cmd/server/handlers/users"
	"volta-cms/cmd/server/middlewares"
	"volta-cms/internal/clients/mongo"
	"volta-cms/internal/config"
	"volta-cms/internal/logger"
	authService "volta-cms/internal/services/auth"
	sectionsService "volta-cms/internal/services/sections"
	settingsService "volta-cms/internal/services/settings"
	usersService "volta-cms/internal/services/users"
	"volta-cms/internal/utils/crypto"

	_ "volta-cms/docs" // Load swagger docs

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const (
	RateLimitExpiration = 1 * time.Minute
)

// setupRouter configures and returns a Fiber app with all routes
func setupRouter(ctx context.Context, cfg config.Config) *fiber.App {

	// Initialize validator and register password validation
	v := validator.New()
	if err := crypto.RegisterPasswordValidator(v); err != nil {
		logger.L().Error("failed to register password validator", "err", err)
		panic(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Content-Type, Authorization",
		AllowCredentials: cfg.CORSOrigins != "*",
	}))

	if cfg.RouteMetricsEnabled {
		middlewares.AttachMetrics(app)
	}

	// Health check endpoint, outside versioned API to appease scanners and to avoid logging
	app.Get("/healthz", handlers.Healthz)

	app.Get("/docs/*", swagger.HandlerDefault)

	var v1 fiber.Router
	if cfg.RequestLoggingEnabled {
		v1 = app.Group("/api/v1", fiberlogger.New())
		logger.L().Info("request logging enabled")
	} else {
		v1 = app.Group("/api/v1")
		logger.L().Info("request logging disabled")
	}

	// Repositories
	usersRepo, err := mongo.NewUsersRepo(ctx, mongo.DB())
	if err != nil {
		logger.L().Error(usersService.ErrCreateUsersRepo.Error(), "error", err)
		panic(err)
	}
	sectionsRepo, err := mongo.NewSectionsRepo(ctx, mongo.DB())
	if err != nil {
		logger.L().Error(sectionsService.ErrCreateSectionsRepo.Error(), "error", err)
		panic(err)
	}
	settingsRepo, err := mongo.NewSettingsRepo(ctx, mongo.DB())
	if err != nil {
		logger.L().Error(settingsService.ErrCreateSettingsRepo.Error(), "error", err)
		panic(err)
	}

	// Services
	usersSvc := usersService.NewService(usersRepo, cfg, logger.L())
	authSvc := authService.NewService(usersSvc, cfg, logger.L())
	sectionsSvc := sectionsService.NewService(sectionsRepo, logger.L())
	settingsSvc := settingsService.NewService(settingsRepo, sectionsSvc, logger.L())

	// Guards
	authGuard := middlewares.Auth(cfg, usersSvc)
	adminOnly := middlewares.RequireRoles(usersService.RoleAdmin)

	limiterMW := middlewares.BuildRateLimiter(cfg.SignInRatePerMin, RateLimitExpiration)

	// Auth routes
	authH := authHandlers.NewHandlers(authSvc, cfg, v)
	authGrp := v1.Group("/auth", limiterMW)
	authGrp.Post("/register", authH.Register)
	authGrp.Post("/login", authH.Login)
	authGrp.Post("/logout", authGuard, authH.Logout)

	// Users routes: creation is open, everything else is admin territory
	usersH := userHandlers.NewHandlers(usersSvc, v)
	usersGrp := v1.Group("/users")
	usersGrp.Post("/", usersH.Create)
	usersGrp.Get("/", authGuard, adminOnly, usersH.List)
	usersGrp.Get("/:id", authGuard, adminOnly, usersH.Get)
	usersGrp.Patch("/:id", authGuard, adminOnly, usersH.Update)
	usersGrp.Delete("/:id", authGuard, adminOnly, usersH.Delete)

	// Site sections: public reads, admin mutations
	sectionsH := sectionHandlers.NewHandlers(sectionsSvc, v)
	sectionsGrp := v1.Group("/site-sections")
	sectionsGrp.Get("/", sectionsH.List)
	sectionsGrp.Get("/:id", sectionsH.Get)
	sectionsGrp.Post("/", authGuard, adminOnly, sectionsH.Create)
	sectionsGrp.Patch("/:id", authGuard, adminOnly, sectionsH.Update)
	sectionsGrp.Delete("/:id", authGuard, adminOnly, sectionsH.Delete)

	// Settings: public reads (the website renders from these), admin mutations
	settingsH := settingHandlers.NewHandlers(settingsSvc, v)
	settingsGrp := v1.Group("/settings")
	settingsGrp.Get("/", settingsH.List)
	settingsGrp.Get("/section/:title", settingsH.ListBySection)
	settingsGrp.Get("/:id", settingsH.Get)
	settingsGrp.Post("/", authGuard, adminOnly, settingsH.Create)
	settingsGrp.Patch("/:id", authGuard, adminOnly, settingsH.Update)
	settingsGrp.Delete("/:id", authGuard, adminOnly, settingsH.Delete)

	// Current account
	v1.Get("/me", authGuard, handlers.Me)

	return app
}
