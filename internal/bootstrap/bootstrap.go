package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/berkcan/schedbuilder/internal/app/controllers"
	appRepos "github.com/berkcan/schedbuilder/internal/app/repositories"
	appRoutes "github.com/berkcan/schedbuilder/internal/app/routes"
	appServices "github.com/berkcan/schedbuilder/internal/app/services"
	"github.com/berkcan/schedbuilder/internal/config"
	appMiddleware "github.com/berkcan/schedbuilder/internal/middleware"
	pkgAuth "github.com/berkcan/schedbuilder/internal/pkg/auth"
	"github.com/berkcan/schedbuilder/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogueRepo       *appRepos.CatalogueRepository
	PlannerService      appServices.PlannerService
	CatalogueService    appServices.CatalogueService
	ScheduleController  *appControllers.ScheduleController
	CatalogueController *appControllers.CatalogueController
	AuthController      *appControllers.AuthController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupCatalogue creates the catalogue repository and performs the initial
// load. A missing or malformed catalogue file is a startup failure: the
// service cannot answer a single solve without it.
func SetupCatalogue(cfg *config.Config, lgr zerolog.Logger) (*appRepos.CatalogueRepository, error) {
	repo := appRepos.NewCatalogueRepository(cfg.Catalogue.Path)

	lgr.Info().Str("path", cfg.Catalogue.Path).Msg("Loading catalogue...")
	if err := repo.Load(); err != nil {
		lgr.Error().Err(err).Msg("Failed to load catalogue")
		return nil, err
	}

	if catalogue, err := repo.Current(); err == nil {
		lgr.Info().
			Int("courses", catalogue.Len()).
			Int("sections", catalogue.SectionCount()).
			Msg("Catalogue loaded")
	}

	return repo, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, catalogueRepo *appRepos.CatalogueRepository, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, CatalogueRepo: catalogueRepo}

	tokenExp, err := time.ParseDuration(cfg.Auth.TokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid token expiration: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.Auth.Issuer,
	})

	deps.PlannerService, err = appServices.NewPlannerService(
		catalogueRepo,
		cfg.Planner.MaxSchedules,
		cfg.Planner.CacheSize,
		lgr,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to setup planner: %w", err)
	}

	deps.CatalogueService = appServices.NewCatalogueService(catalogueRepo, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.ScheduleController = appControllers.NewScheduleController(deps.PlannerService)
	deps.CatalogueController = appControllers.NewCatalogueController(deps.CatalogueService)
	deps.AuthController = appControllers.NewAuthController(deps.JWTService, cfg.Auth.AdminKeyHash, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.ScheduleController,
		deps.CatalogueController,
		deps.AuthController,
		deps.AuthMiddleware,
	)

	return router
}
