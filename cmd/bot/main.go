package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pairbot/internal/bot"
	"pairbot/internal/config"
	"pairbot/internal/language"
	"pairbot/internal/logger"
	"pairbot/internal/repository/postgres"
	"pairbot/internal/service"
	"pairbot/internal/telegram"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	log := logger.New()
	defer log.Sync()

	log.Info("Starting Pairbot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}

	log.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	log.Info("Database migrations completed")

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	pairRepo := postgres.NewPairRepo(db)

	// Initialize services
	normalizer := service.NewNormalizer(language.NewWhatlangDetector())
	dictService := service.NewDictionaryService(userRepo, pairRepo, normalizer, log)

	// Initialize Telegram client, with SOCKS5 proxy when configured
	var proxyAddr, proxyLogin, proxyPass string
	if cfg.Proxy.Enabled() {
		proxyAddr = cfg.Proxy.Addr()
		proxyLogin = cfg.Proxy.Login
		proxyPass = cfg.Proxy.Password
		log.Info("Using SOCKS5 proxy for Telegram API", zap.String("addr", proxyAddr))
	}

	httpClient, err := telegram.NewHTTPClient(proxyAddr, proxyLogin, proxyPass)
	if err != nil {
		log.Fatal("Failed to build HTTP client", zap.Error(err))
	}

	client, err := telegram.NewClient(cfg.BotToken, httpClient, log)
	if err != nil {
		log.Fatal("Failed to create Telegram client", zap.Error(err))
	}

	// Initialize dispatcher
	handler := bot.NewHandler(dictService, log)
	dispatcher := bot.NewDispatcher(client, client, handler, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Bot started successfully")

	if err := dispatcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Dispatcher stopped", zap.Error(err))
	}

	log.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, log *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			log.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			log.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, log *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.Info("No new migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Migrations applied successfully")
	return nil
}
