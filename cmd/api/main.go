package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/summaro/pkg/validator"

	"github.com/johnquangdev/summaro/internal/adapter/handler"
	"github.com/johnquangdev/summaro/internal/adapter/repository"
	"github.com/johnquangdev/summaro/internal/infrastructure/cache"
	"github.com/johnquangdev/summaro/internal/infrastructure/database"
	"github.com/johnquangdev/summaro/internal/infrastructure/storage"
	"github.com/johnquangdev/summaro/internal/usecase/audio"
	"github.com/johnquangdev/summaro/internal/usecase/digest"
	"github.com/johnquangdev/summaro/internal/usecase/janitor"
	pkgai "github.com/johnquangdev/summaro/pkg/ai"
	"github.com/johnquangdev/summaro/pkg/config"
)

// @title           Summaro API
// @version         1.0
// @description     Upload meeting audio, get a transcript, an extractive summary and who-does-what action items.

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("🔧 Initializing dependencies...")

	// Local upload directory
	log.Printf("📁 Using upload directory %s", cfg.Upload.Dir)
	uploads, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	deps := audio.Deps{Store: uploads}

	// Result cache: Redis when configured, otherwise in-process
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		deps.Cache = redisStore
	} else {
		memStore := cache.NewMemoryStore(0)
		defer memStore.Close()
		deps.Cache = memStore
	}

	// Archive copies in MinIO
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		archive, err := storage.NewMinIOClient(rootCtx, &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		deps.Archive = archive
	}

	// Digest history in Postgres
	if cfg.Database.Enabled {
		log.Println("📦 Connecting to database...")
		db, err := database.NewPostgresDB(cfg, logger)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB(db)

		if cfg.Database.AutoMigrate {
			log.Println("🔄 Applying migrations (development only) ...")
			n, err := database.AutoMigrate(db, database.MigrationsDir)
			if err != nil {
				log.Fatalf("Failed to apply migrations: %v", err)
			}
			log.Printf("✅ Applied %d migrations", n)
		} else {
			log.Println("🔄 Skipping migrations; run scripts/migrate.go for schema changes")
		}
		deps.History = repository.NewDigestRepository(db)
	}

	// Providers and engine
	log.Println("🤖 Initializing AI components...")
	transcriber := pkgai.NewAssemblyAI(&cfg.AssemblyAI, logger)
	if !transcriber.Configured() {
		log.Println("⚠️  ASSEMBLYAI_API_KEY is not set, uploads will return the fallback digest")
	}
	deps.Transcriber = transcriber
	deps.Summarizer = pkgai.NewGroqClient(&cfg.Groq)
	deps.Engine = digest.NewEngine(
		digest.WithTargetSentences(cfg.Digest.TargetSentences),
		digest.WithMaxActionItems(cfg.Digest.MaxActionItems),
		digest.WithMaxBreakdownSentences(cfg.Digest.MaxBreakdownSentences),
		digest.WithParticipants(cfg.Digest.Participants),
		digest.WithLogger(logger),
	)

	svc := audio.NewService(deps, audio.Options{
		MaxBytes:          cfg.MaxUploadBytes(),
		AllowedExtensions: cfg.Upload.AllowedExtensions,
		ProviderTimeout:   cfg.AssemblyAI.Timeout,
		ResultTTL:         cfg.Redis.ResultTTL,
	}, logger)

	// Storage janitor
	if cfg.Janitor.Enabled {
		opts := janitor.Options{
			MaxBytes:    cfg.Janitor.MaxStorageMB << 20,
			TargetRatio: cfg.Janitor.TargetRatio,
			Interval:    cfg.Janitor.Interval,
		}
		if cfg.Janitor.WatchUploads {
			opts.WatchDir = cfg.Upload.Dir
		}
		j := janitor.New(uploads, opts, logger.Named("janitor"))
		go func() {
			if err := j.Run(rootCtx); err != nil && err != context.Canceled {
				logger.Error("janitor stopped", zap.Error(err))
			}
		}()
		log.Printf("🧹 Janitor running every %s (limit %dMB)", cfg.Janitor.Interval, cfg.Janitor.MaxStorageMB)
	}

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		handler.NewAudioHandler(svc, logger),
		handler.NewDigestHandler(svc, logger),
		svc.HistoryEnabled(),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	<-rootCtx.Done()

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}
	zc.Level = level
	return zc.Build()
}
