package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	cacheadapter "github.com/lanternworks/auth-service/internal/adapters/cache"
	grpcadapter "github.com/lanternworks/auth-service/internal/adapters/grpc"
	httpadapter "github.com/lanternworks/auth-service/internal/adapters/http"
	"github.com/lanternworks/auth-service/internal/adapters/mail"
	"github.com/lanternworks/auth-service/internal/adapters/postgres"
	"github.com/lanternworks/auth-service/internal/adapters/security"
	"github.com/lanternworks/auth-service/internal/adapters/worker"
	"github.com/lanternworks/auth-service/internal/application"
	"github.com/lanternworks/auth-service/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	grpcServer *grpc.Server
	grpcLis    net.Listener
	janitor    *worker.Janitor
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping auth service", "http_port", cfg.HTTPPort, "grpc_port", cfg.GRPCPort)

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}

	if err := postgres.RunMigrations(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	cleanup := func(context.Context) { _ = sqlDB.Close() }

	// The session cache is optional; without Redis the store serves every read.
	var sessionCache ports.SessionCache
	if cfg.RedisURL != "" {
		redisClient, err := cacheadapter.Connect(ctx, cfg.RedisURL)
		if err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = redisClient.Close()
			_ = sqlDB.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		sessionCache = cacheadapter.NewRedisSessionCache(redisClient)
		cleanup = func(context.Context) {
			_ = redisClient.Close()
			_ = sqlDB.Close()
		}
	} else {
		logger.Warn("no redis url configured; session cache disabled")
	}

	repos := postgres.NewRepositories(db)

	var mailer ports.RecoveryMailer
	if cfg.MailHost != "" {
		smtpMailer, err := mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.MailHost,
			Port:     cfg.MailPort,
			Username: cfg.MailUsername,
			Password: cfg.MailPassword,
			From:     cfg.MailFrom,
		})
		if err != nil {
			cleanup(ctx)
			return nil, fmt.Errorf("init smtp mailer: %w", err)
		}
		mailer = smtpMailer
	} else {
		logger.Warn("no mail host configured; recovery codes are written to the log")
		mailer = mail.NewLoggingMailer(logger)
	}

	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			SessionValidity:  cfg.SessionValidity,
			RecoveryValidity: cfg.RecoveryValidity,
		},
		Users:    repos.Users,
		Sessions: repos.Sessions,
		Recovery: repos.Recovery,
		Hasher:   security.NewArgon2Hasher(),
		Mailer:   mailer,
		Cache:    sessionCache,
	})

	handler := httpadapter.NewHandler(svc)
	router := httpadapter.NewRouter(handler)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	grpcadapter.Register(grpcServer, grpcadapter.NewSessionServer(svc))

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		cleanup(ctx)
		return nil, fmt.Errorf("listen gRPC: %w", err)
	}

	janitor := worker.NewJanitor(
		logger,
		repos.Sessions,
		repos.Recovery,
		cfg.JanitorInterval,
		cfg.SessionValidity,
	)

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		grpcServer: grpcServer,
		grpcLis:    lis,
		janitor:    janitor,
		cleanupFn:  cleanup,
	}, nil
}

func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		r.logger.Info("grpc server started", "addr", r.grpcLis.Addr().String())
		if err := r.grpcServer.Serve(r.grpcLis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.grpcServer.GracefulStop()
	r.cleanupFn(shutdownCtx)
	return nil
}

func (r *Runtime) RunJanitor(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.logger.Info("janitor started", "interval", r.cfg.JanitorInterval.String())
	err := r.janitor.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	r.cleanupFn(shutdownCtx)

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
