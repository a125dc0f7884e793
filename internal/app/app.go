package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/nutricart-tech/go-backend/internal/cfg"
	v1Http "github.com/nutricart-tech/go-backend/internal/delivery/v1/http"
	"github.com/nutricart-tech/go-backend/internal/infrastructure/kafka"
	"github.com/nutricart-tech/go-backend/internal/infrastructure/recommender"
	"github.com/nutricart-tech/go-backend/internal/infrastructure/token"
	s3Repo "github.com/nutricart-tech/go-backend/internal/repository/minio"
	"github.com/nutricart-tech/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/nutricart-tech/go-backend/internal/repository/pgdb/converter/generated"
	"github.com/nutricart-tech/go-backend/internal/repository/redis"
	redisConv "github.com/nutricart-tech/go-backend/internal/repository/redis/converter/generated"
	"github.com/nutricart-tech/go-backend/internal/usecase"
	"github.com/nutricart-tech/go-backend/pkg/clients"
	"github.com/nutricart-tech/go-backend/pkg/closer"
	"github.com/nutricart-tech/go-backend/pkg/e"
	"github.com/nutricart-tech/go-backend/pkg/logger"
	"github.com/nutricart-tech/go-backend/pkg/postgres"
)

const (
	initTimeout     = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	c := closer.NewCloser(0)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	c.Add(func(ctx context.Context) error {
		db.Close()
		logger.Infof("postgres pool closed")
		return nil
	})

	userConv := pgdbConv.NewUserConverterImpl()
	cartConv := pgdbConv.NewCartConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	cartRepo := pgdb.NewCartRepo(db.Pool, cartConv)
	productRepo := pgdb.NewProductRepo(db.Pool)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), initTimeout)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(redisCtx); err != nil {
		redisCancel()
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	redisCancel()
	c.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(initTimeout); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}
	c.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	ml := recommender.NewRecommender(cfg.Ml, logger)
	tokens := token.NewManager(cfg.Auth)

	authUC := usecase.NewAuthUC(userRepo, cartRepo, db.Pool, tokens, logger)
	cartUC := usecase.NewCartUC(cartRepo, imageRepo, logger)
	catalogUC := usecase.NewCatalogUC(productRepo, imageRepo, logger)
	recUC := usecase.NewRecommendationUC(cartRepo, productRepo, cacheRepo, imageRepo, ml, producer, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(authUC, catalogUC, cartUC, recUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	c.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := c.Close(shutdownCtx); err != nil {
		logger.Errorf(err, "shutdown error")
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
