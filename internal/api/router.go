package api

import (
	"fmt"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cezeus/club-api/internal/api/handler"
	"github.com/cezeus/club-api/internal/api/middleware"
	"github.com/cezeus/club-api/internal/core/domain"
	"github.com/cezeus/club-api/internal/core/service"
	mongodb "github.com/cezeus/club-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cezeus/club-api/internal/infrastructure/db/redis"
	"github.com/cezeus/club-api/internal/infrastructure/pdf"
	"github.com/cezeus/club-api/internal/infrastructure/render"
	"github.com/cezeus/club-api/internal/infrastructure/storage"
)

// Options carries everything the router needs beyond its datastore handles.
type Options struct {
	JWTSecret     string
	PublicBaseURL string
	ExportScale   int
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("club"))

	// --- Infrastructure ---
	memberRepo := mongodb.NewMemberRepository(db)
	accountRepo := mongodb.NewAccountRepository(db)
	tokenStore := redisdb.NewResetTokenStore(rdb)

	photoStore, err := storage.NewGridFSStorage(db, opts.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("photo storage: %w", err)
	}
	rasterizer, err := render.NewCardRasterizer(opts.ExportScale, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("card rasterizer: %w", err)
	}

	// --- Services ---
	authService := service.NewAuthService(accountRepo, tokenStore, opts.Logger, opts.JWTSecret, 24*time.Hour)
	credentialService := service.NewCredentialService(memberRepo, opts.Logger)
	memberService := service.NewMemberService(memberRepo, authService, photoStore, credentialService, opts.Logger)
	exportService := service.NewExportService(memberRepo, rasterizer, pdf.NewCardAssembler(), opts.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService)
	credentialHandler := handler.NewCredentialHandler(credentialService, exportService)
	mediaHandler := handler.NewMediaHandler(photoStore)
	referenceHandler := handler.NewReferenceHandler()

	authMiddleware := middleware.Auth(opts.JWTSecret)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/reset-confirm", authHandler.ConfirmReset)
	e.GET("/media/*", mediaHandler.Serve)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/reference-data", referenceHandler.Get)

	v1.GET("/members", memberHandler.List)
	v1.GET("/members/:id", memberHandler.Get)
	v1.POST("/members", memberHandler.Create,
		middleware.RequireCapability(func(caps domain.CapabilitySet) bool { return caps.CanCreate }))
	v1.PATCH("/members/:id", memberHandler.Update,
		middleware.RequireCapability(func(caps domain.CapabilitySet) bool { return caps.CanEdit }))
	v1.DELETE("/members/:id", memberHandler.Delete,
		middleware.RequireCapability(func(caps domain.CapabilitySet) bool { return caps.CanDelete }))
	v1.PUT("/members/:id/photo", memberHandler.AttachPhoto,
		middleware.RequireCapability(func(caps domain.CapabilitySet) bool { return caps.CanEdit }))

	v1.PUT("/carnet/selection", credentialHandler.Select)
	v1.GET("/carnet", credentialHandler.Faces)
	v1.POST("/carnet/flip", credentialHandler.Flip)
	v1.GET("/members/:id/carnet/export", credentialHandler.Export)

	v1.POST("/credential-resets", authHandler.RequestReset,
		middleware.RequireCapability(func(caps domain.CapabilitySet) bool { return caps.CanResetCredential }))

	return e, nil
}
