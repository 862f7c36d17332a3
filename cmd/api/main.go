// @title QuizForge API
// @version 1.0
// @description Quiz authoring, AI question generation, grading and answer explanations.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quizforge/cmd/api/docs"
	"quizforge/internal/adapter"
	"quizforge/internal/ai"
	"quizforge/internal/auth"
	"quizforge/internal/cache"
	"quizforge/internal/config"
	"quizforge/internal/database"
	"quizforge/internal/domain"
	"quizforge/internal/handler"
	"quizforge/internal/logger"
	"quizforge/internal/middleware"
	"quizforge/internal/orchestrator"
	"quizforge/internal/repository"
	"quizforge/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if cfg.Auth.JWTSecret == "" {
		appLogger.Fatal("JWT_SECRET must be set")
	}

	ctx := context.Background()

	// AI providers
	providers := ai.NewPriorityList(ai.NewClients(ctx, cfg.AI, appLogger), cfg.AI.Provider, appLogger)
	if len(providers.Eligible()) == 0 {
		appLogger.Warn("No AI provider configured, serving synthetic questions and template explanations")
	}
	orch := orchestrator.New(providers, appLogger)

	// Database
	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN(), appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	var quizRepository domain.QuizRepository = repository.NewSQLXQuizRepository(db)
	resultRepository := repository.NewSQLXResultRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db, appLogger)

	// Redis is optional; without it quizzes are read straight from the database.
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, quiz cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			appLogger.Info("Successfully connected to Redis")
			quizRepository = repository.NewCachedQuizRepository(quizRepository, adapter.NewRedisCacheAdapter(redisClient), cfg.Redis.QuizTTL, appLogger)
		}
	}

	// Services
	generator := service.NewQuizGenerationService(orch, cfg.AI.MaxQuestions, appLogger)
	explainer := service.NewAnswerExplanationService(orch)
	fanout := service.NewExplanationFanout(explainer, cfg.AI.ExplainConcurrency, appLogger)
	quizService := service.NewQuizService(quizRepository, txManager, fanout, appLogger)
	resultService := service.NewResultService(quizRepository, resultRepository, fanout, appLogger)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(appLogger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Quiz:   handler.NewQuizHandler(quizService, generator, explainer),
		Result: handler.NewResultHandler(resultService),
		Health: handler.NewHealthHandler(providers),
	}, auth.NewTokenVerifier(cfg.Auth.JWTSecret))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
