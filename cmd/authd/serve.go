package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	grpcContext "github.com/dtroode/auth-server/internal/api/grpc/context"
	grpcRouter "github.com/dtroode/auth-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/auth-server/internal/api/grpc/server"
	httpHandler "github.com/dtroode/auth-server/internal/api/http/handler"
	httpRouter "github.com/dtroode/auth-server/internal/api/http/router"
	httpServer "github.com/dtroode/auth-server/internal/api/http/server"
	"github.com/dtroode/auth-server/internal/config"
	"github.com/dtroode/auth-server/internal/google"
	"github.com/dtroode/auth-server/internal/logger"
	"github.com/dtroode/auth-server/internal/mail"
	"github.com/dtroode/auth-server/internal/metrics"
	"github.com/dtroode/auth-server/internal/model"
	"github.com/dtroode/auth-server/internal/password"
	"github.com/dtroode/auth-server/internal/repository/postgres"
	"github.com/dtroode/auth-server/internal/repository/redis"
	"github.com/dtroode/auth-server/internal/server"
	"github.com/dtroode/auth-server/internal/service"
	storage "github.com/dtroode/auth-server/internal/storage/minio"
	"github.com/dtroode/auth-server/internal/token"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the gRPC and HTTP servers",
		Long: `Start the gRPC and HTTP servers. Pending migrations are applied on
startup. The process stops gracefully on SIGINT, SIGTERM or SIGQUIT.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)
	logAppVersion(log)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	codec := token.NewJWT(token.Config{
		Access:  token.KindConfig{Secret: cfg.JWT.Access.Secret, TTL: cfg.JWT.Access.TTL},
		Refresh: token.KindConfig{Secret: cfg.JWT.Refresh.Secret, TTL: cfg.JWT.Refresh.TTL},
		Reset:   token.KindConfig{Secret: cfg.JWT.Reset.Secret, TTL: cfg.JWT.Reset.TTL},
		Confirm: token.KindConfig{Secret: cfg.JWT.Confirm.Secret, TTL: cfg.JWT.Confirm.TTL},
	})

	tokenStore, closeStore, err := newTokenStore(ctx, cfg, db, codec)
	if err != nil {
		return err
	}
	defer closeStore()

	templates, err := newTemplateStorage(ctx, cfg, log)
	if err != nil {
		return err
	}

	verifier, err := google.NewVerifier(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize google verifier: %w", err)
	}

	hasher := password.NewHasher(password.Params{Time: cfg.KDF.Time, MemKiB: cfg.KDF.MemKiB, Par: cfg.KDF.Par})
	mailer := mail.NewMailer(mail.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, templates, log)

	authService := service.NewAuth(
		postgres.NewUserRepository(db),
		tokenStore,
		codec,
		hasher,
		mailer,
		verifier,
		service.AuthConfig{GoogleClientID: cfg.Google.ClientID, ClientURL: cfg.ClientURL},
		log,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	flowMetrics := metrics.New(registry)

	grpcSrv := grpcServer.NewGRPCServer(
		grpcRouter.New(authService, authService, grpcContext.NewManager(), flowMetrics, log).Register(),
		fmt.Sprintf(":%s", cfg.GRPC.Port),
	)

	httpSrv := httpServer.NewHTTPServer(
		httpRouter.New(
			authService,
			authService,
			httpHandler.CookieConfig{Secure: cfg.HTTP.SecureCookie, MaxAge: codec.TTL(model.TokenKindRefresh)},
			flowMetrics,
			registry,
			db.Ping,
			log,
		).Register(),
		fmt.Sprintf(":%s", cfg.HTTP.Port),
		cfg.HTTP.ReadTimeout,
		cfg.HTTP.WriteTimeout,
	)

	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	servers := []model.Server{grpcSrv, httpSrv}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			log.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				log.Error("failed to start server", "error", err, "address", s.Address())
				cancel()
			}
		}(s)
	}

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			log.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	log.Info("shutdown complete")

	return nil
}

// newTokenStore selects the token store backend. The returned func releases
// backend resources.
func newTokenStore(ctx context.Context, cfg *config.Config, db *postgres.Connection, codec *token.JWT) (model.TokenStore, func(), error) {
	if cfg.TokenStore != config.TokenStoreRedis {
		return postgres.NewTokenRepository(db), func() {}, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return redis.NewTokenStore(client, cfg.Redis.Prefix, codec.TTL), func() { _ = client.Close() }, nil
}

// newTemplateStorage connects the email template bucket and uploads missing
// default templates. It returns nil storage when the bucket is disabled.
func newTemplateStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (model.Storage, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}

	client, err := storage.New(ctx, storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Prefix:    cfg.Storage.Prefix,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize template storage: %w", err)
	}

	seeded, err := mail.SeedTemplates(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to seed email templates: %w", err)
	}
	log.Info("email templates seeded", "uploaded", seeded)

	return client, nil
}

func logAppVersion(log *logger.Logger) {
	log.Info("build info",
		"version", buildVersion,
		"date", buildDate,
		"commit", buildCommit)
}
