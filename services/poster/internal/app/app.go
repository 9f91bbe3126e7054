package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poster-board/pkg/auth"
	"poster-board/pkg/cache"
	"poster-board/pkg/config"
	"poster-board/pkg/database"
	"poster-board/pkg/jwt"
	"poster-board/pkg/logger"
	"poster-board/pkg/middleware"
	"poster-board/pkg/queue"
	"poster-board/pkg/s3"
	posterHTTP "poster-board/services/poster/internal/controller/http"
	"poster-board/services/poster/internal/media"
	posterCache "poster-board/services/poster/internal/repo/cache"
	"poster-board/services/poster/internal/repo/persistent"
	"poster-board/services/poster/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "poster-board/services/poster/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()
	if cfg.IsDevelopment() {
		log = logger.NewConsole()
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache and rate limit)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without events)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	posterRepo := persistent.NewPosterRepository(a.db)
	mediaRepo := persistent.NewMediaRepository(a.db)

	var cacheRepo posterCache.PosterCache
	if a.redisClient != nil {
		cacheRepo = posterCache.NewRedisPosterCache(a.redisClient, a.cfg.PosterCacheTTL)
	}

	var events usecase.EventPublisher
	if a.queueClient != nil {
		events = a.queueClient
	}

	// Initialize use cases
	posterUseCase := usecase.NewPosterUseCase(
		posterRepo,
		cacheRepo,
		media.NewStore(a.s3Client, mediaRepo, a.cfg.MediaMaxBytes, a.log),
		auth.NewContextGate(),
		events,
		a.cfg.RequestTimeout,
		a.log,
	)

	// Initialize HTTP handlers
	posterHandler := posterHTTP.NewPosterHandler(posterUseCase, a.log)

	if !a.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: newRouter(a.jwtService, a.redisClient, posterHandler),
	}

	go func() {
		a.log.Info("Poster service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func newRouter(jwtService *jwt.Service, redisClient *redis.Client, posterHandler *posterHTTP.PosterHandler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	{
		api.GET("/posters", posterHandler.ListPosters)
		api.GET("/posters/:id", posterHandler.GetPoster)
		api.POST("/posters", posterHandler.CreatePoster)
		api.PUT("/posters/:id", posterHandler.UpdatePoster)
		api.DELETE("/posters/:id", posterHandler.DeletePoster)
	}

	return r
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down poster service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Stop accepting requests before closing the stores they use.
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("Poster service exited")
	return nil
}
