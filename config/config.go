package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Upstream endpoints
	Stream StreamConfig
	API    APIConfig

	// Optional Redis-backed stream source (local demos)
	Redis RedisConfig

	// Feed behaviour
	Feed FeedConfig
}

// ServerConfig is the configuration for the read-only status server
type ServerConfig struct {
	Host string `env:"FW_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"FW_PORT" envDefault:"8090"`
	Mode string `env:"FW_MODE" envDefault:"release"`
}

// StreamConfig is the configuration for the transaction push stream
type StreamConfig struct {
	// Source selects the stream implementation: "websocket" or "redis"
	Source string `env:"FW_STREAM_SOURCE" envDefault:"websocket"`

	URL              string        `env:"FW_WS_URL" envDefault:"ws://localhost:8080/ws"`
	ReconnectDelay   time.Duration `env:"FW_WS_RECONNECT_DELAY" envDefault:"5s"`
	PingInterval     time.Duration `env:"FW_WS_PING_INTERVAL" envDefault:"4s"`
	PongWait         time.Duration `env:"FW_WS_PONG_WAIT" envDefault:"10s"`
	WriteWait        time.Duration `env:"FW_WS_WRITE_WAIT" envDefault:"10s"`
	HandshakeTimeout time.Duration `env:"FW_WS_HANDSHAKE_TIMEOUT" envDefault:"10s"`
}

// APIConfig is the configuration for the backend REST API
type APIConfig struct {
	BaseURL   string        `env:"FW_API_URL" envDefault:"http://localhost:8080/api/v1"`
	Timeout   time.Duration `env:"FW_API_TIMEOUT" envDefault:"10s"`
	TokenPath string        `env:"FW_API_TOKEN_PATH"`
}

// RedisConfig is the configuration for the optional Redis stream source
// Note: Only standalone mode is supported
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Channel  string `env:"FW_REDIS_CHANNEL" envDefault:"transactions"`
	UseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	// Connection pool settings
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
	ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// FeedConfig is the configuration for the live feed store
type FeedConfig struct {
	HighlightTTL        time.Duration `env:"FW_FEED_HIGHLIGHT_TTL" envDefault:"3s"`
	NotificationShow    time.Duration `env:"FW_FEED_NOTIFICATION_SHOW" envDefault:"50ms"`
	NotificationDisplay time.Duration `env:"FW_FEED_NOTIFICATION_DISPLAY" envDefault:"5s"`
	NotificationExit    time.Duration `env:"FW_FEED_NOTIFICATION_EXIT" envDefault:"300ms"`
	SoundEnabled        bool          `env:"FW_FEED_SOUND" envDefault:"false"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		fmt.Printf("Error loading configuration: %v", err)
		return nil, err
	}
	return cfg, nil
}
