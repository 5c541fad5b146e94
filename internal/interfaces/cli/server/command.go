// Package server implements the "server" CLI command: config load,
// migrations, permission seeding and the HTTP listener with graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"norte/internal/domain/user"
	"norte/internal/infrastructure/auth"
	"norte/internal/infrastructure/config"
	"norte/internal/infrastructure/database"
	"norte/internal/infrastructure/migration"
	"norte/internal/infrastructure/repository"
	httpRouter "norte/internal/interfaces/http"
	"norte/internal/shared/biztime"
	sharedConfig "norte/internal/shared/config"
	"norte/internal/shared/constants"
	"norte/internal/shared/logger"
)

var (
	env                string
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Norte HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip running migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	logger.Info("starting server", "environment", env)

	if err := biztime.Init(cfg.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if !skipMigrationCheck {
		if err := runMigrations(env, database.Get()); err != nil {
			logger.Fatal("migration handling failed", "error", err)
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := ensureBootstrapUser(cmd.Context(), database.Get(), cfg, log); err != nil {
		logger.Fatal("failed to ensure bootstrap user", "error", err)
	}

	container, err := httpRouter.NewContainer(database.Get(), redisClient, cfg, log)
	if err != nil {
		logger.Fatal("failed to build container", "error", err)
	}

	if err := container.PermissionSeeder.Seed(cmd.Context()); err != nil {
		logger.Fatal("failed to seed permissions", "error", err)
	}

	router := httpRouter.NewRouter(container, cfg.Server.AllowedOrigins, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func runMigrations(environment string, db *gorm.DB) error {
	manager := migration.NewManager(environment)

	logger.Info("running migrations", "strategy", manager.GetStrategy().GetName())

	if err := manager.Migrate(db, migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations completed")
	return nil
}

// ensureBootstrapUser creates the first administrator account from config
// credentials when the bootstrap id is still vacant. The permission seeder
// run right after grants it the Super Admin role.
func ensureBootstrapUser(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) error {
	bootstrap := cfg.Auth.Bootstrap
	if bootstrap.Email == "" || bootstrap.Password == "" {
		log.Debugw("bootstrap credentials not configured, skipping")
		return nil
	}

	userRepo := repository.NewUserRepository(db)

	existing, err := userRepo.GetByID(ctx, constants.BootstrapUserID)
	if err != nil {
		return fmt.Errorf("failed to look up bootstrap user: %w", err)
	}
	if existing != nil {
		return nil
	}

	newUser, err := newBootstrapUser(bootstrap, cfg.Auth.Password.BcryptCost)
	if err != nil {
		return err
	}

	if err := userRepo.Save(ctx, newUser); err != nil {
		return fmt.Errorf("failed to save bootstrap user: %w", err)
	}

	log.Infow("bootstrap user created", "user_id", newUser.ID(), "email", bootstrap.Email)
	return nil
}

func newBootstrapUser(bootstrap sharedConfig.BootstrapConfig, bcryptCost int) (*user.User, error) {
	newUser, err := user.NewUser(bootstrap.Name, bootstrap.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid bootstrap user: %w", err)
	}

	hasher := auth.NewBcryptPasswordHasher(bcryptCost)
	hash, err := hasher.Hash(bootstrap.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash bootstrap password: %w", err)
	}
	if err := newUser.SetPasswordHash(hash); err != nil {
		return nil, err
	}

	return newUser, nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
