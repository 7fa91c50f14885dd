package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/okandemir/campusgate/internal/app/controllers"
	appRoutes "github.com/okandemir/campusgate/internal/app/routes"
	appServices "github.com/okandemir/campusgate/internal/app/services"
	"github.com/okandemir/campusgate/internal/config"
	appMiddleware "github.com/okandemir/campusgate/internal/middleware"
	pkgAuth "github.com/okandemir/campusgate/internal/pkg/auth"
	"github.com/okandemir/campusgate/internal/pkg/logger"
	"github.com/okandemir/campusgate/internal/pkg/upstream"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Upstream               *upstream.Client
	AuthService            appServices.AuthService
	StudentService         appServices.StudentService
	ModuleService          appServices.ModuleService
	RegistrationService    appServices.RegistrationService
	GradeService           appServices.GradeService
	OperationService       appServices.OperationService
	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	ModuleController       *appControllers.ModuleController
	RegistrationController *appControllers.RegistrationController
	GradeController        *appControllers.GradeController
	OperationController    *appControllers.OperationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
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

// BuildDependencies wires the upstream client, services, controllers and
// middleware together.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	// Per-request bearer tokens ride on the request context; the client
	// itself holds no ambient auth state
	apiClient := upstream.NewClient(cfg.Upstream.BaseURL, cfg.UpstreamTimeout(), upstream.ContextToken{}, lgr)
	lgr.Info().Str("baseUrl", cfg.Upstream.BaseURL).Msg("Records backend client configured")

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
	})

	authService := appServices.NewAuthService(apiClient, lgr)
	studentService := appServices.NewStudentService(apiClient, lgr)
	moduleService := appServices.NewModuleService(apiClient, lgr)
	registrationService := appServices.NewRegistrationService(apiClient, lgr)
	gradeService := appServices.NewGradeService(apiClient, lgr)
	operationService := appServices.NewOperationService(apiClient, lgr)

	deps := &Dependencies{
		Upstream:               apiClient,
		AuthService:            authService,
		StudentService:         studentService,
		ModuleService:          moduleService,
		RegistrationService:    registrationService,
		GradeService:           gradeService,
		OperationService:       operationService,
		AuthController:         appControllers.NewAuthController(authService),
		StudentController:      appControllers.NewStudentController(studentService),
		ModuleController:       appControllers.NewModuleController(moduleService),
		RegistrationController: appControllers.NewRegistrationController(registrationService),
		GradeController:        appControllers.NewGradeController(gradeService),
		OperationController:    appControllers.NewOperationController(operationService),
		AuthMiddleware:         appMiddleware.NewAuthMiddleware(jwtService),
		JWTService:             jwtService,
		Logger:                 lgr,
	}
	return deps, nil
}

// SetupRouter builds the gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.ModuleController,
		deps.RegistrationController,
		deps.GradeController,
		deps.OperationController,
		deps.AuthMiddleware,
	)

	return router
}
