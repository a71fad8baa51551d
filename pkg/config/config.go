package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/events"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
)

const (
	DefaultConfigPath = "/etc/exchange"
	ConfigFileName    = "exchange.yml"

	sourceDefault     = "default"
	sourceFile        = "file"
	sourceEnvironment = "environment"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// ExchangeConfig holds the settings of the exchange server and CLI.
type ExchangeConfig struct {
	// ServerName identifies this server in audit records and events.
	ServerName string `yaml:"server_name" json:"server_name"`

	// MaxPageSize caps the page size of every query.
	MaxPageSize int `yaml:"max_page_size" json:"max_page_size"`

	// PublishZones are the zones a published data asset is visible in.
	PublishZones []string `yaml:"publish_zones" json:"publish_zones"`

	// DefaultZones are the zones a new or withdrawn data asset is visible in.
	DefaultZones []string `yaml:"default_zones" json:"default_zones"`

	// TokenTTL is the lifetime of issued access tokens in seconds.
	TokenTTL int `yaml:"token_ttl" json:"token_ttl"`

	// EventsBrokers are Kafka brokers. Empty keeps events in process.
	EventsBrokers []string `yaml:"events_brokers" json:"events_brokers"`
	EventsTopic   string   `yaml:"events_topic" json:"events_topic"`

	LogLevel    string `yaml:"log_level" json:"log_level"`
	LogEncoding string `yaml:"log_encoding" json:"log_encoding"`

	sources        map[string]string
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

var (
	globalConfig *ExchangeConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *ExchangeConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

func newDefault() *ExchangeConfig {
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "exchange"
	}
	return &ExchangeConfig{
		ServerName:    hostname,
		MaxPageSize:   1000,
		PublishZones:  []string{},
		DefaultZones:  []string{},
		TokenTTL:      480,
		EventsBrokers: []string{},
		EventsTopic:   events.DefaultTopic,
		LogLevel:      "info",
		LogEncoding:   logger.EncodingConsole,
		sources:       make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*ExchangeConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = sourceDefault
	}

	configPath := os.Getenv("EXCHANGE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig ExchangeConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"server_name", "max_page_size", "publish_zones", "default_zones",
		"token_ttl", "events_brokers", "events_topic", "log_level", "log_encoding",
	}
}

func (c *ExchangeConfig) applyFileConfig(file *ExchangeConfig) {
	if file.ServerName != "" {
		c.ServerName = file.ServerName
		c.sources["server_name"] = sourceFile
	}
	if file.MaxPageSize != 0 {
		c.MaxPageSize = file.MaxPageSize
		c.sources["max_page_size"] = sourceFile
	}
	if len(file.PublishZones) > 0 {
		c.PublishZones = file.PublishZones
		c.sources["publish_zones"] = sourceFile
	}
	if len(file.DefaultZones) > 0 {
		c.DefaultZones = file.DefaultZones
		c.sources["default_zones"] = sourceFile
	}
	if file.TokenTTL != 0 {
		c.TokenTTL = file.TokenTTL
		c.sources["token_ttl"] = sourceFile
	}
	if len(file.EventsBrokers) > 0 {
		c.EventsBrokers = file.EventsBrokers
		c.sources["events_brokers"] = sourceFile
	}
	if file.EventsTopic != "" {
		c.EventsTopic = file.EventsTopic
		c.sources["events_topic"] = sourceFile
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = sourceFile
	}
	if file.LogEncoding != "" {
		c.LogEncoding = file.LogEncoding
		c.sources["log_encoding"] = sourceFile
	}
}

func (c *ExchangeConfig) applyEnvConfig() {
	if val := os.Getenv("EXCHANGE_SERVER_NAME"); val != "" {
		c.ServerName = val
		c.sources["server_name"] = sourceEnvironment
	}
	if val := os.Getenv("EXCHANGE_MAX_PAGE_SIZE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.MaxPageSize = i
			c.sources["max_page_size"] = sourceEnvironment
		}
	}
	if val := os.Getenv("EXCHANGE_PUBLISH_ZONES"); val != "" {
		c.PublishZones = splitAndTrim(val)
		c.sources["publish_zones"] = sourceEnvironment
	}
	if val := os.Getenv("EXCHANGE_DEFAULT_ZONES"); val != "" {
		c.DefaultZones = splitAndTrim(val)
		c.sources["default_zones"] = sourceEnvironment
	}
	if val := os.Getenv("EXCHANGE_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTL = i
			c.sources["token_ttl"] = sourceEnvironment
		}
	}
	if val := os.Getenv("EXCHANGE_EVENTS_BROKERS"); val != "" {
		c.EventsBrokers = splitAndTrim(val)
		c.sources["events_brokers"] = sourceEnvironment
	}
	if val := os.Getenv("EXCHANGE_EVENTS_TOPIC"); val != "" {
		c.EventsTopic = val
		c.sources["events_topic"] = sourceEnvironment
	}
	if val := os.Getenv("EXCHANGE_LOG_LEVEL"); val != "" {
		c.LogLevel = strings.ToLower(val)
		c.sources["log_level"] = sourceEnvironment
	}
	if val := os.Getenv("EXCHANGE_LOG_ENCODING"); val != "" {
		c.LogEncoding = strings.ToLower(val)
		c.sources["log_encoding"] = sourceEnvironment
	}
}

// ConfigFilePath returns the path to the config file
func (c *ExchangeConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *ExchangeConfig) Source(name string) string {
	if c.sources == nil {
		return sourceDefault
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return sourceDefault
}

// TokenLifetime returns the token TTL as a duration
func (c *ExchangeConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenTTL) * time.Second
}

// Logger returns the logger settings.
func (c *ExchangeConfig) Logger() logger.Config {
	return logger.Config{Level: c.LogLevel, Encoding: c.LogEncoding}
}

// Events returns the event transport settings.
func (c *ExchangeConfig) Events() events.Config {
	return events.Config{Brokers: c.EventsBrokers, Topic: c.EventsTopic, ClientID: c.ServerName}
}

// Validate validates the configuration
func (c *ExchangeConfig) Validate() error {
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("invalid max_page_size value: %d", c.MaxPageSize)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("invalid token_ttl value: %d", c.TokenTTL)
	}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level value: %s", c.LogLevel)
	}
	if c.LogEncoding != logger.EncodingJSON && c.LogEncoding != logger.EncodingConsole {
		return fmt.Errorf("invalid log_encoding value: %s", c.LogEncoding)
	}
	for _, zone := range c.PublishZones {
		if contains(c.DefaultZones, zone) {
			return fmt.Errorf("zone %s is both a publish zone and a default zone", zone)
		}
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *ExchangeConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "server_name", Value: c.ServerName, Source: c.Source("server_name")},
		{Name: "max_page_size", Value: strconv.Itoa(c.MaxPageSize), Source: c.Source("max_page_size")},
		{Name: "publish_zones", Value: strings.Join(c.PublishZones, ","), Source: c.Source("publish_zones")},
		{Name: "default_zones", Value: strings.Join(c.DefaultZones, ","), Source: c.Source("default_zones")},
		{Name: "token_ttl", Value: strconv.Itoa(c.TokenTTL), Source: c.Source("token_ttl")},
		{Name: "events_brokers", Value: strings.Join(c.EventsBrokers, ","), Source: c.Source("events_brokers")},
		{Name: "events_topic", Value: c.EventsTopic, Source: c.Source("events_topic")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "log_encoding", Value: c.LogEncoding, Source: c.Source("log_encoding")},
	}
}

// FormatText returns a text representation of the configuration
func (c *ExchangeConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *ExchangeConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
