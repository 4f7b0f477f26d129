package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qudurat_backend/internal/config"
	"qudurat_backend/internal/controller"
	"qudurat_backend/internal/repository"
	"qudurat_backend/internal/service"
	"qudurat_backend/pkg/configwatcher"
	"qudurat_backend/pkg/database"
	"qudurat_backend/pkg/logger"
	"qudurat_backend/pkg/monitoring"
	"qudurat_backend/pkg/security"
	"qudurat_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	question     *repository.PlacementQuestionRepository
	result       *repository.PlacementResultRepository
	subscription *repository.SubscriptionRepository
	ticket       *repository.TicketRepository
	points       *repository.PointsRepository
	notification *repository.NotificationRepository
}

type services struct {
	auth         *service.AuthService
	otp          *service.OTPService
	storage      *service.StorageService
	placement    *service.PlacementService
	question     *service.PlacementQuestionService
	subscription *service.SubscriptionService
	ticket       *service.TicketService
	points       *service.PointsService
	notification *service.NotificationService
	user         *service.UserService
}

type controllers struct {
	auth         *controller.AuthController
	placement    *controller.PlacementController
	subscription *controller.SubscriptionController
	ticket       *controller.TicketController
	points       *controller.PointsController
	notification *controller.NotificationController
	user         *controller.UserController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		question:     repository.NewPlacementQuestionRepository(db),
		result:       repository.NewPlacementResultRepository(db),
		subscription: repository.NewSubscriptionRepository(db),
		ticket:       repository.NewTicketRepository(db),
		points:       repository.NewPointsRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.notification = service.NewNotificationService(repos.notification)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.otp = service.NewOTPService(rdb, repos.user, service.ConsoleSMSSender{}, cfg)
	s.points = service.NewPointsService(repos.points, s.notification)
	s.user = service.NewUserService(repos.user, s.notification)
	s.question = service.NewPlacementQuestionService(repos.question)
	s.placement = service.NewPlacementService(repos.question, repos.result, s.points, s.notification, repos.user, cfg)

	gateway := service.NewHTTPPaymentGateway(cfg.Payment)
	s.subscription = service.NewSubscriptionService(repos.subscription, gateway, s.points, s.notification, cfg)

	s.ticket = service.NewTicketService(repos.ticket, s.notification)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth, s.otp),
		placement:    controller.NewPlacementController(s.placement, s.question, s.storage, repos.result),
		subscription: controller.NewSubscriptionController(s.subscription),
		ticket:       controller.NewTicketController(s.ticket, s.storage),
		points:       controller.NewPointsController(s.points),
		notification: controller.NewNotificationController(s.notification),
		user:         controller.NewUserController(s.user, s.storage),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window == 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	// Sweep expired subscriptions once an hour.
	go func() {
		ticker := time.NewTicker(time.Hour)
		for range ticker.C {
			if err := s.subscription.ExpireDue(); err != nil {
				logger.Log.Error("subscription expiry sweep failed", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, repos, db, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("qudurat-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("config reloaded")
		app.Config = newCfg
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
