// Package config provides configuration management for the exchange server.
//
// Settings are read from $EXCHANGE_CONFIG_PATH/exchange.yml (default
// /etc/exchange/exchange.yml) and then overridden by environment variables.
// Every attribute remembers whether its value came from the defaults, the
// file or the environment.
//
// # Environment
//
//   - EXCHANGE_SERVER_NAME, EXCHANGE_MAX_PAGE_SIZE
//   - EXCHANGE_PUBLISH_ZONES, EXCHANGE_DEFAULT_ZONES (comma separated)
//   - EXCHANGE_TOKEN_TTL (seconds)
//   - EXCHANGE_EVENTS_BROKERS, EXCHANGE_EVENTS_TOPIC
//   - EXCHANGE_LOG_LEVEL, EXCHANGE_LOG_ENCODING
//
// Secrets are only taken from the environment: DATABASE_URL and
// EXCHANGE_TOKEN_SECRET.
package config
