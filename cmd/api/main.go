package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/millionaire-api/internal/config"
	"github.com/yourusername/millionaire-api/internal/handler"
	"github.com/yourusername/millionaire-api/internal/middleware"
	pgRepo "github.com/yourusername/millionaire-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/millionaire-api/internal/repository/redis"
	"github.com/yourusername/millionaire-api/internal/service"
	"github.com/yourusername/millionaire-api/internal/service/gameplay"
	"github.com/yourusername/millionaire-api/internal/view"
	"github.com/yourusername/millionaire-api/pkg/auth"
	"github.com/yourusername/millionaire-api/pkg/auth/manager"
	"github.com/yourusername/millionaire-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db, database.DefaultMigrationsPath); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Репозитории
	userRepo := pgRepo.NewUserRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	gameRepo := pgRepo.NewGameRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}
	lockRepo, err := redisRepo.NewLockRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize LockRepo: %v", err)
		os.Exit(1)
	}

	// Правила игры
	rules, err := gameplay.NewRules(cfg.Game.TimeLimit(), cfg.Game.Prizes)
	if err != nil {
		log.Printf("Invalid game rules: %v", err)
		os.Exit(1)
	}
	rnd, err := gameplay.NewRandomizer()
	if err != nil {
		log.Printf("Failed to seed randomizer: %v", err)
		os.Exit(1)
	}

	location, err := cfg.Server.Location()
	if err != nil {
		log.Printf("Invalid time zone %q: %v", cfg.Server.TimeZone, err)
		os.Exit(1)
	}

	var notifier service.PrizeNotifier = &service.NoopPrizeNotifier{}
	if cfg.Email.ResendAPIKey != "" {
		resendNotifier, err := service.NewResendPrizeNotifier(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Game.Currency)
		if err != nil {
			log.Printf("Failed to initialize Resend notifier: %v", err)
			os.Exit(1)
		}
		notifier = resendNotifier
	} else {
		log.Println("Resend API key is empty, prize emails are disabled")
	}

	// Сервисы
	questionSource := service.NewCachedQuestionSource(questionRepo, cacheRepo)
	gameService := service.NewGameService(gameRepo, userRepo, lockRepo, questionSource, rules, rnd, notifier, cfg.Game.LockTTL())
	userService := service.NewUserService(userRepo, gameRepo, gameService.StateMachine())
	authService := service.NewAuthService(userRepo)
	importer := service.NewQuestionImporter(questionRepo, questionSource, rules.MaxLevel())

	// JWT и куки
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}
	tokenManager := manager.NewTokenManager(jwtService)
	isProduction := gin.Mode() == gin.ReleaseMode
	tokenManager.SetProductionMode(isProduction)

	templates, err := view.LoadTemplates()
	if err != nil {
		log.Printf("Failed to load templates: %v", err)
		os.Exit(1)
	}

	router := gin.Default()

	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.SetHTMLTemplate(templates)

	routes := &handler.Routes{
		Auth:        handler.NewAuthHandler(authService, tokenManager),
		Users:       handler.NewUserHandler(userService, handler.Locale{Location: location, Currency: cfg.Game.Currency}),
		Games:       handler.NewGameHandler(gameService),
		Questions:   handler.NewQuestionHandler(importer),
		WS:          handler.NewWSHandler(gameService, cfg.CORS.AllowOrigins),
		Health:      handler.NewHealthHandler(db, redisClient),
		AuthMW:      middleware.NewAuthMiddlewareWithManager(jwtService, tokenManager),
		RateLimiter: middleware.NewRateLimiter(redisClient),
	}
	routes.Register(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	// Дожидаемся писем о выигрыше, начатых до остановки
	gameService.WaitNotifications()

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}
	if sqlDB, err := database.GetSQLDB(db); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exited properly")
}
