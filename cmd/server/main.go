package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/petitmarche/shop-api/internal/api"
	"github.com/petitmarche/shop-api/internal/core/ports"
	"github.com/petitmarche/shop-api/internal/core/service"
	"github.com/petitmarche/shop-api/internal/infrastructure/config"
	mongodb "github.com/petitmarche/shop-api/internal/infrastructure/db/mongo"
	redisdb "github.com/petitmarche/shop-api/internal/infrastructure/db/redis"
	"github.com/petitmarche/shop-api/internal/infrastructure/storage"
	"github.com/petitmarche/shop-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tokens, err := service.NewTokenService(cfg.JWTSecret, 12*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("token service")
	}

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		// The cache is an optimization; the validator falls back to Mongo.
		log.Warn().Err(err).Msg("redis unavailable, category cache disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes")
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("product indexes")
	}

	blobs, uploadDir, err := buildStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("storage")
	}

	var cache ports.CategoryCache
	if rdb != nil {
		cache = redisdb.NewCategoryCache(rdb)
	}

	validator := service.NewReferenceValidator(categoryRepo, cache, log)
	authService := service.NewAuthService(userRepo, tokens, log)
	categoryService := service.NewCategoryService(categoryRepo, cache, log)
	productService := service.NewProductService(productRepo, validator, blobs, log)

	e := api.NewRouter(api.Dependencies{
		AuthService:     authService,
		CategoryService: categoryService,
		ProductService:  productService,
		Tokens:          tokens,
		Mongo:           db,
		Redis:           rdb,
		BaseURL:         cfg.BaseURL,
		UploadDir:       uploadDir,
		Logger:          log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
}

// buildStorage selects the blob store driver. The returned uploadDir is
// non-empty only for the local driver, which the router serves statically.
func buildStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.BlobStore, string, error) {
	switch cfg.Storage.Driver {
	case "s3":
		awsCfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.Storage.S3Region))
		if err != nil {
			return nil, "", err
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Storage.S3Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Storage.S3Endpoint)
				o.UsePathStyle = true
			}
		})
		store, err := storage.NewS3Store(client, cfg.Storage.S3Bucket)
		if err != nil {
			return nil, "", err
		}
		log.Info().Str("bucket", cfg.Storage.S3Bucket).Str("region", cfg.Storage.S3Region).Msg("using s3 storage")
		return store, "", nil
	default:
		store, err := storage.NewLocalStore(cfg.Storage.UploadDir)
		if err != nil {
			return nil, "", err
		}
		log.Info().Str("dir", cfg.Storage.UploadDir).Msg("using local storage")
		return store, cfg.Storage.UploadDir, nil
	}
}
