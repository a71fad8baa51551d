package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/events"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/endpoints"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/middleware"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the metadata exchange server",
	Long: `Run the metadata exchange server.

To run the server requires the environment variables EXCHANGE_TOKEN_SECRET
and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		return runServer(host, port, !noMigrate)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}

func runServer(host, port string, migrate bool) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Fail fast on missing secrets before touching the database
	secret, err := tokenSecret()
	if err != nil {
		return err
	}

	if migrate {
		log.Info("running database migrations")
		if err := runMigrations(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	b, err := openBackend(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = b.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if b.pubSub != nil {
		if err := logEvents(ctx, b.pubSub, b.publisher.Topic(), log.Named("out-topic")); err != nil {
			return err
		}
	}

	jwt := middleware.NewJWTAuthenticator(secret, cfg.ServerName)
	s := server.NewServer(b.db, cfg, jwt, b.exchange, log, host, port)
	endpoints.RegisterAll(s)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// logEvents drains the in-process out topic into the log so events are
// visible when no broker is configured.
func logEvents(ctx context.Context, subscriber message.Subscriber, topic string, log logger.Logger) error {
	messages, err := subscriber.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	go func() {
		for msg := range messages {
			var event events.Event
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				log.Warnf("undecodable event %s: %v", msg.UUID, err)
			} else {
				log.With("event_type", event.Type, "type_name", event.TypeName, "guid", event.ElementGUID+event.RelationshipGUID).
					Debugf("%s by %s", event.Type, event.UserID)
			}
			msg.Ack()
		}
	}()
	return nil
}
