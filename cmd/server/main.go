package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/cache"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/config"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/data"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/db"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/events"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/handler"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/jobs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/middleware"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/oauth"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/service"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		panic(fmt.Sprintf("cannot create config: %v", err))
	}

	logger, err := logging.NewFromEnv(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	ctx = logging.ContextWithLogger(ctx, logger)

	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot create db", zap.Error(err))
	}
	defer pool.Close()

	userRepo := data.NewUserRepository(pool)
	accountRepo := data.NewAccountRepository(pool)
	sessionRepo := data.NewSessionRepository(pool)
	teacherRepo := data.NewTeacherRepository(pool)
	studentRepo := data.NewStudentRepository(pool)
	pieceRepo := data.NewPieceRepository(pool)
	lessonRepo := data.NewLessonRepository(pool)

	var appCache service.Cache = cache.NopCache{}
	if rdb, err := cache.NewClient(ctx, cfg.RedisURL); err != nil {
		logger.Warn(ctx, "redis unavailable, caching disabled", zap.Error(err))
	} else {
		defer rdb.Close()
		appCache = cache.NewRedisCache(rdb)
	}

	eventSender := events.NewEventSender(cfg.Brokers(), cfg.KafkaLessonTopic, cfg.KafkaAuthTopic)
	defer eventSender.Close()

	var avatars service.AvatarStore
	if cfg.S3Enabled() {
		s3Client, err := storage.NewS3Client(ctx, cfg)
		if err != nil {
			logger.Fatal(ctx, "cannot create s3 client", zap.Error(err))
		}
		store := storage.NewAvatarStore(s3Client, cfg.S3Bucket)
		if err := store.EnsureBucket(ctx); err != nil {
			logger.Fatal(ctx, "cannot ensure avatar bucket", zap.Error(err))
		}
		avatars = store
	} else {
		logger.Info(ctx, "s3 not configured, avatar uploads disabled")
	}

	authService := service.NewAuthService(userRepo, accountRepo, sessionRepo, eventSender, cfg.SessionTTL, cfg.VerificationTokenTTL)
	userService := service.NewUserService(userRepo, accountRepo)
	teacherService := service.NewTeacherService(teacherRepo, lessonRepo, appCache)
	studentService := service.NewStudentService(studentRepo, teacherService, avatars)
	pieceService := service.NewPieceService(pieceRepo, appCache)
	lessonService := service.NewLessonService(lessonRepo, studentRepo, pieceRepo, teacherService, eventSender)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(middleware.NewMetricsMiddleware())
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 1<<20) // 1 MB
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		handler.NewAuthHandler(authService).RegisterRoutes(r, authMiddleware)
		if cfg.GoogleOAuthEnabled() {
			google := oauth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
			handler.NewOAuthHandler(google, authService, cfg.FrontendURL).RegisterRoutes(r)
		}
		handler.NewUserHandler(userService).RegisterRoutes(r, authMiddleware)
		handler.NewTeacherHandler(teacherService).RegisterRoutes(r, authMiddleware)
		handler.NewStudentHandler(studentService).RegisterRoutes(r, authMiddleware)
		handler.NewPieceHandler(pieceService).RegisterRoutes(r, authMiddleware)
		handler.NewLessonHandler(lessonService).RegisterRoutes(r, authMiddleware)
	})

	healthWatcher := db.NewHealthWatcher(pool)
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			grpc_recovery.UnaryServerInterceptor(),
			logging.NewUnaryLoggingInterceptor(logger),
		)),
	)
	healthWatcher.Register(grpcServer)
	go healthWatcher.Run(ctx)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		logger.Fatal(ctx, "cannot create listener", zap.Error(err))
	}
	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			logger.Error(ctx, "grpc health server stopped", zap.Error(err))
		}
	}()

	janitor := jobs.NewJanitor(sessionRepo, logger)
	if err := janitor.Start(ctx, cfg.JanitorSchedule); err != nil {
		logger.Fatal(ctx, "cannot start janitor", zap.Error(err))
	}

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:              port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(ctx, "Starting server", zap.String("port", port), zap.Int("grpc_health_port", cfg.GRPCPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "server forced to shutdown", zap.Error(err))
	}
	janitor.Stop(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info(ctx, "Server stopped")
}
