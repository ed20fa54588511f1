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
	config "github.com/seller-tech/seller-backend/internal/cfg"
	v1Http "github.com/seller-tech/seller-backend/internal/delivery/v1/http"
	"github.com/seller-tech/seller-backend/internal/infrastructure/kafka"
	s3Repo "github.com/seller-tech/seller-backend/internal/repository/minio"
	"github.com/seller-tech/seller-backend/internal/repository/pgdb"
	pgdbConv "github.com/seller-tech/seller-backend/internal/repository/pgdb/converter/generated"
	"github.com/seller-tech/seller-backend/internal/repository/redis"
	redisConv "github.com/seller-tech/seller-backend/internal/repository/redis/converter/generated"
	"github.com/seller-tech/seller-backend/internal/usecase"
	"github.com/seller-tech/seller-backend/pkg/clients"
	"github.com/seller-tech/seller-backend/pkg/closer"
	"github.com/seller-tech/seller-backend/pkg/e"
	"github.com/seller-tech/seller-backend/pkg/logger"
	"github.com/seller-tech/seller-backend/pkg/postgres"
)

// Run собирает зависимости, запускает HTTP-сервер и outbox-воркер
// и блокируется до сигнала завершения или фатальной ошибки сервера.
func Run(cfg *config.Config, logger logger.Logger) error {
	appCloser := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		return err
	}
	appCloser.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	cartConv := pgdbConv.NewCartConverterImpl()
	cartItemConv := pgdbConv.NewCartItemConverterImpl()
	productConv := pgdbConv.NewProductConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	cartRepo := pgdb.NewCartRepo(db.Pool, cartConv, cartItemConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		return err
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		return err
	}
	minioCancel()

	inventoryStore := s3Repo.NewInventoryRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		return err
	}
	appCloser.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		return err
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		return err
	}
	appCloser.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	cartUC := usecase.NewCartUC(cartRepo, productRepo, outboxRepo, db.Pool, logger, cfg.Storage.QueryTimeout)
	catalogUC := usecase.NewCatalogUC(productRepo, cacheRepo, logger, cfg.Storage.QueryTimeout)
	inventoryUC := usecase.NewInventoryUC(inventoryStore, productRepo, cacheRepo, db.Pool, logger)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	worker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	worker.Start(workerCtx)
	appCloser.Add(func(ctx context.Context) error {
		workerCancel()
		worker.Stop()
		return nil
	})

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(cartUC, catalogUC, inventoryUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

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
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	if err := appCloser.Close(shutdownCtx); err != nil {
		logger.Warnf("resource shutdown error: %v", err)
	}

	logger.Infof("Application shutdown complete")
	return appErr
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
