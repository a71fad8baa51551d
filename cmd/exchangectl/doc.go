// Command exchangectl runs and administers the metadata exchange server.
//
// The exchange lets an asset manager, such as a CRM or a data catalog,
// maintain glossaries, data assets and comments in the open metadata
// repository while keeping its own identifiers for them.
//
// # Quick Start
//
//	# Run database migrations
//	exchangectl db migrate
//
//	# Start the server
//	exchangectl server
//
//	# Issue an access token for a caller
//	exchangectl token issue garygeeke
//
//	# Apply an exchange document, once or whenever it changes
//	exchangectl import --user garygeeke crm.yml
//	exchangectl watch --user garygeeke crm.yml
//
//	# Review recent imports
//	exchangectl audit --msgid import
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - EXCHANGE_TOKEN_SECRET: HMAC secret access tokens are signed with
//   - EXCHANGE_CONFIG_PATH: directory holding exchange.yml (default: /etc/exchange)
//   - EXCHANGE_LOG_LEVEL: Log level (debug, info, warn, error)
//   - EXCHANGE_AUDIT_ENABLED: set to false to turn the audit trail off
//   - PORT: Server port (default: 8000)
package main
