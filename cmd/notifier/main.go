// Notification worker: consumes request-lifecycle events from Kafka and
// fans them out. Currently the fan-out is a structured log entry per event,
// which downstream delivery (email, in-app) can hook into.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/haku4130/vendors-platform/internal/marketplace/events"
)

// Config struct for YAML configuration
type Config struct {
	KafkaBrokers []string `yaml:"KAFKA_BROKERS"`
	Topic        string   `yaml:"TOPIC"`
}

func main() {
	logger, _ := zap.NewProduction()
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

	consumer := events.NewConsumer(cfg.KafkaBrokers, "marketplace-notifier", cfg.Topic, logger)
	defer consumer.Close()

	consumer.RegisterHandler(func(_ context.Context, event events.Event) error {
		fields := []zap.Field{zap.String("event_type", string(event.Type))}
		if event.Request != nil {
			fields = append(fields, zap.String("request_id", event.Request.ID.String()))
			if event.Request.ProjectID != nil {
				fields = append(fields, zap.String("project_id", event.Request.ProjectID.String()))
			}
			if event.Request.VendorProfileID != nil {
				fields = append(fields, zap.String("vendor_profile_id", event.Request.VendorProfileID.String()))
			}
		}
		logger.Info("request event", fields...)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	consumer.Start(ctx)
	logger.Info("Notifier running", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.Topic))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	cancel()
	logger.Info("Notifier stopped")
}

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
