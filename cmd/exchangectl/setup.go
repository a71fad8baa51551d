package main

import (
	"fmt"
	"os"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/audit"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/config"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/db"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/events"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server"
)

const tokenSecretEnv = "EXCHANGE_TOKEN_SECRET"

// loadConfig loads and validates the configuration and configures the
// process-wide logger from it.
func loadConfig() (*config.ExchangeConfig, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logger.Configure(cfg.Logger()); err != nil {
		return nil, nil, fmt.Errorf("failed to configure logger: %w", err)
	}
	return cfg, logger.L(), nil
}

func tokenSecret() ([]byte, error) {
	secret := os.Getenv(tokenSecretEnv)
	if secret == "" {
		return nil, fmt.Errorf("%s environment variable is required", tokenSecretEnv)
	}
	if len(secret) < 32 {
		return nil, fmt.Errorf("%s must be at least 32 bytes", tokenSecretEnv)
	}
	return []byte(secret), nil
}

// backend is the repository and event transport behind the facades.
type backend struct {
	db        *gorm.DB
	exchange  *server.Exchange
	publisher *events.WatermillPublisher
	// pubSub is set when events stay in process.
	pubSub *gochannel.GoChannel
}

func (b *backend) Close() error {
	return b.publisher.Close()
}

func openBackend(cfg *config.ExchangeConfig, log logger.Logger) (*backend, error) {
	database, err := db.Connect(db.Config{LogLevel: cfg.LogLevel})
	if err != nil {
		return nil, err
	}

	publisher, pubSub, err := events.New(cfg.Events(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create event publisher: %w", err)
	}
	audit.SetStore(audit.NewStore(database))

	return &backend{
		db:        database,
		exchange:  server.NewExchangeForDB(database, cfg, publisher, log),
		publisher: publisher,
		pubSub:    pubSub,
	}, nil
}
