package main

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vncsmyrnk/cookgen/internal/adapters/handler/http"
	"github.com/vncsmyrnk/cookgen/internal/adapters/password"
	"github.com/vncsmyrnk/cookgen/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/cookgen/internal/adapters/revocation"
	"github.com/vncsmyrnk/cookgen/internal/adapters/storage"
	"github.com/vncsmyrnk/cookgen/internal/adapters/token"
	"github.com/vncsmyrnk/cookgen/internal/config"
	"github.com/vncsmyrnk/cookgen/internal/core/services"
	"github.com/vncsmyrnk/cookgen/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Postgres.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Authentication fails closed with 503 until the store comes back.
		logger.Warn(ctx, "revocation store unreachable at startup", "addr", cfg.Redis.Addr(), "error", err)
	}

	codec, err := token.NewJWTCodec([]byte(cfg.JWT.SecretKey), cfg.JWT.Algorithm, cfg.JWT.TTL())
	if err != nil {
		return fmt.Errorf("token codec: %w", err)
	}

	images, err := storage.NewS3ImageStore(ctx, storage.S3Config{
		Region:    cfg.S3.Region,
		Bucket:    cfg.S3.Bucket,
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		URLTTL:    cfg.S3.URLTTL(),
		Timeout:   cfg.StoreTimeout(),
	})
	if err != nil {
		return fmt.Errorf("image store: %w", err)
	}

	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	ledger := revocation.NewRedisLedger(rdb, cfg.Redis.RevocationPrefix, cfg.StoreTimeout())

	userRepo := postgres.NewUserRepository(db)
	recipeRepo := postgres.NewRecipeRepository(db)
	ingredientRepo := postgres.NewIngredientRepository(db)
	preferenceRepo := postgres.NewPreferenceRepository(db)
	savedRepo := postgres.NewSavedRecipeRepository(db)

	authService := services.NewAuthService(userRepo, hasher, codec, ledger, logger)
	userService := services.NewUserService(userRepo, hasher, preferenceRepo, savedRepo, recipeRepo, ingredientRepo)
	recipeService := services.NewRecipeService(recipeRepo, ingredientRepo, preferenceRepo, images, logger)
	ingredientService := services.NewIngredientService(ingredientRepo)

	handler := http.NewHandler(http.Handlers{
		AppName:     cfg.AppName,
		AuthService: authService,
		Logger:      logger,
		Auth:        http.NewAuthHandler(authService, userService, logger),
		Users:       http.NewUserHandler(userService, logger),
		Recipes:     http.NewRecipeHandler(recipeService, logger),
		Ingredients: http.NewIngredientHandler(ingredientService, logger),
	})
	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info(ctx, "listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	logger.Info(context.Background(), "gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
