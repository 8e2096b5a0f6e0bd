package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/haku4130/vendors-platform/internal/marketplace/controller"
	gorm "github.com/haku4130/vendors-platform/internal/marketplace/db"
	"github.com/haku4130/vendors-platform/internal/marketplace/events"
	"github.com/haku4130/vendors-platform/internal/marketplace/handlers"
)

// Config struct for YAML configuration
type Config struct {
	HTTPPort       int      `yaml:"HTTP_PORT"`
	DBHost         string   `yaml:"DB_HOST"`
	DBPort         int      `yaml:"DB_PORT"`
	DBUser         string   `yaml:"DB_USER"`
	DBPassword     string   `yaml:"DB_PASSWORD"`
	DBName         string   `yaml:"DB_NAME"`
	DBSSLMode      string   `yaml:"DB_SSLMODE"`
	KafkaBrokers   []string `yaml:"KAFKA_BROKERS"`
	JWTSecret      string   `yaml:"JWT_SECRET"`
	Topic          string   `yaml:"TOPIC"`
	AllowedOrigins []string `yaml:"ALLOWED_ORIGINS"`
}

func main() {
	logger := initLogger()
	defer func(logger *zap.Logger) {
		err := logger.Sync()
		if err != nil {
			logger.Error("failed to sync logger", zap.Error(err))
		}
	}(logger)

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	repo, err := gorm.NewRepository(initDatabase(cfg))
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	producer, err := events.NewProducer(cfg.KafkaBrokers, logger, cfg.Topic)
	if err != nil {
		log.Fatal("failed to initialize Kafka producer", err)
	}
	defer producer.Close()

	handler := handlers.NewHandler(handlers.Config{
		Accounts:  controller.NewAccountService(repo, logger),
		Catalog:   controller.NewCatalogService(repo, logger),
		Projects:  controller.NewProjectService(repo, logger),
		Vendors:   controller.NewVendorService(repo, logger),
		Matching:  controller.NewMatchingService(repo, logger),
		Requests:  controller.NewRequestService(repo, producer, logger),
		Shortlist: controller.NewShortlistService(repo, logger),
		Reviews:   controller.NewReviewService(repo, logger),
		Feedback:  controller.NewFeedbackService(repo, logger),
		JWTSecret: cfg.JWTSecret,
	}, logger)

	router := handlers.NewRouter(handler, repo, cfg.AllowedOrigins)
	server := handlers.NewServer(cfg.HTTPPort, router, logger)

	go waitForShutdown(server, logger)

	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// initLogger initializes a Zap production logger.
func initLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

// loadConfig loads configuration. Use real config tooling (e.g. Viper) in production.
func loadConfig() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join("internal", "marketplace", "config", "config.yaml")
	}
	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	err = yaml.Unmarshal(file, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// initDatabase initializes the database connection.
func initDatabase(cfg *Config) *gorm.Config {
	return &gorm.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, then
// shuts the server down.
func waitForShutdown(server *handlers.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	server.Stop()
	logger.Info("Server stopped properly")
}
