package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"ytfetch/internal/app/delivery"
	"ytfetch/internal/app/repository"
	"ytfetch/internal/app/usecase"
	"ytfetch/internal/auth"
	"ytfetch/internal/config"
	"ytfetch/internal/extractor"
	"ytfetch/internal/middleware"
	"ytfetch/internal/objectstore"
	"ytfetch/internal/scheduler"
	"ytfetch/internal/utils/logger"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.LogMode),
		zap.Int("max_user_tasks", cfg.MaxUserTasks),
		zap.Int("max_parallel_downloads", cfg.MaxParallelDownloads),
	)

	if err := os.MkdirAll(cfg.DownloadDir, 0755); err != nil {
		logger.Error("failed to create download directory", zap.Error(err))
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	store, err := objectstore.CreateS3Store(context.Background(), cfg.AWSRegion, cfg.S3Endpoint, cfg.S3Bucket)
	if err != nil {
		logger.Error("failed to create object store client", zap.Error(err))
		os.Exit(1)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	sched := scheduler.CreateScheduler(cfg.MaxParallelDownloads)

	userRepo := repository.CreateUserRepository(db)
	taskRepo := repository.CreateTaskRepository(db)
	extractorService := extractor.CreateService(cfg.DownloadDir)

	downloaderUsecase := usecase.CreateDownloaderUsecase(taskRepo, extractorService, store, sched, usecase.DownloaderConfig{
		MaxUserTasks: cfg.MaxUserTasks,
		MaxDuration:  time.Duration(cfg.MaxDurationSeconds) * time.Second,
		PresignTTL:   time.Duration(cfg.PresignTTLSeconds) * time.Second,
	})
	userUsecase := usecase.CreateUserUsecase(userRepo, tokens)
	handlers := delivery.CreateDelivery(downloaderUsecase, userUsecase)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	apiRouter := router.PathPrefix("/api").Subrouter()

	userRouter := apiRouter.PathPrefix("/user").Subrouter()
	userRouter.HandleFunc("/register", handlers.Register).Methods("POST")
	userRouter.HandleFunc("/login", handlers.Login).Methods("POST")

	authMiddleware := middleware.Auth(tokens, userRepo)

	meRouter := apiRouter.PathPrefix("/user/me").Subrouter()
	meRouter.Use(authMiddleware)
	meRouter.HandleFunc("", handlers.Me).Methods("GET")

	downloaderRouter := apiRouter.PathPrefix("/downloader").Subrouter()
	downloaderRouter.Use(authMiddleware)
	downloaderRouter.HandleFunc("/tasks", handlers.GetTasks).Methods("GET")
	downloaderRouter.HandleFunc("/download", handlers.Download).Methods("POST")
	downloaderRouter.HandleFunc("/retrieve", handlers.Retrieve).Methods("GET")

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.PanicMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	case sig := <-quit:
		logger.Info("server is shutting down",
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			os.Exit(1)
		}

		if err := sched.Shutdown(ctx); err != nil {
			logger.Warn("shutdown with downloads still in flight", zap.Error(err))
		}

		logger.Info("server stopped")
	}
}
