package config

import (
	"errors"
	"fmt"
	"time"

	pkgconfig "github.com/weiawesome/snowflake128/pkg/config"
	"github.com/weiawesome/snowflake128/pkg/snowflake"
)

// Node ID sources.
const (
	NodeSourceStatic = "static"
	NodeSourceRedis  = "redis"
)

type Config struct {
	GRPC        ServerConfig
	HTTP        HTTPConfig
	Snowflake   SnowflakeConfig
	Redis       RedisConfig
	EntityTypes map[string]uint32 `mapstructure:"entity_types"`
	NanoID      NanoIDConfig      `mapstructure:"nanoid"`
	CUID2       CUID2Config       `mapstructure:"cuid2"`
	Log         LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type HTTPConfig struct {
	Enabled      bool
	ServerConfig `mapstructure:",squash"`
}

type SnowflakeConfig struct {
	NodeID        uint32 `mapstructure:"node_id"`
	APIVersion    uint32 `mapstructure:"api_version"`
	RollbackGuard bool   `mapstructure:"rollback_guard"`
	NodeSource    string `mapstructure:"node_source"`
}

type RedisConfig struct {
	Address   string
	Password  string
	DB        int           `mapstructure:"db"`
	KeyPrefix string        `mapstructure:"key_prefix"`
	LeaseTTL  time.Duration `mapstructure:"lease_ttl"`
}

type NanoIDConfig struct {
	Size     int    `mapstructure:"size"`
	Alphabet string `mapstructure:"alphabet"`
}

type CUID2Config struct {
	Length int `mapstructure:"length"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads ./config/config.yaml (if present) and the environment.
func Load() (*Config, error) {
	return LoadFrom("./config", "config")
}

// LoadFrom is Load with an explicit config directory and file name.
func LoadFrom(path, name string, opts ...pkgconfig.Option) (*Config, error) {
	v, err := pkgconfig.Load(path, name, opts...)
	if err != nil {
		return nil, err
	}

	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50053)
	v.SetDefault("http.enabled", true)
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8090)
	v.SetDefault("snowflake.node_id", 1)
	v.SetDefault("snowflake.api_version", 1)
	v.SetDefault("snowflake.rollback_guard", true)
	v.SetDefault("snowflake.node_source", NodeSourceStatic)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "snowflake")
	v.SetDefault("redis.lease_ttl", 30*time.Second)
	v.SetDefault("nanoid.size", 21)
	v.SetDefault("nanoid.alphabet", "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	v.SetDefault("cuid2.length", 24)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("http.enabled", "HTTP_ENABLED")
	v.BindEnv("http.port", "PORT")
	v.BindEnv("grpc.port", "GRPC_PORT")
	v.BindEnv("snowflake.node_id", "SNOWFLAKE_NODE_ID", "NODE_ID")
	v.BindEnv("snowflake.api_version", "SNOWFLAKE_API_VERSION")
	v.BindEnv("snowflake.rollback_guard", "SNOWFLAKE_ROLLBACK_GUARD")
	v.BindEnv("snowflake.node_source", "SNOWFLAKE_NODE_SOURCE")
	v.BindEnv("redis.address", "REDIS_ADDRESS", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("nanoid.size", "NANOID_SIZE")
	v.BindEnv("nanoid.alphabet", "NANOID_ALPHABET")
	v.BindEnv("cuid2.length", "CUID2_LENGTH")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports configuration values the generators would reject, so the
// service fails at startup rather than on first use.
func (c *Config) Validate() error {
	var errs []error

	if c.Snowflake.NodeID > snowflake.MaxNodeID {
		errs = append(errs, fmt.Errorf("snowflake.node_id %d out of range [0, %d]", c.Snowflake.NodeID, snowflake.MaxNodeID))
	}
	if c.Snowflake.APIVersion > snowflake.MaxAPIVersion {
		errs = append(errs, fmt.Errorf("snowflake.api_version %d out of range [0, %d]", c.Snowflake.APIVersion, snowflake.MaxAPIVersion))
	}
	switch c.Snowflake.NodeSource {
	case NodeSourceStatic:
	case NodeSourceRedis:
		if c.Redis.Address == "" {
			errs = append(errs, errors.New("redis.address is required when snowflake.node_source is redis"))
		}
		if c.Redis.LeaseTTL < time.Second {
			errs = append(errs, fmt.Errorf("redis.lease_ttl %s must be at least 1s", c.Redis.LeaseTTL))
		}
	default:
		errs = append(errs, fmt.Errorf("snowflake.node_source %q must be %q or %q", c.Snowflake.NodeSource, NodeSourceStatic, NodeSourceRedis))
	}
	for name, tag := range c.EntityTypes {
		if name == "" {
			errs = append(errs, errors.New("entity_types contains an empty name"))
		}
		if tag > snowflake.MaxEntityType {
			errs = append(errs, fmt.Errorf("entity_types.%s tag %d out of range [0, %d]", name, tag, snowflake.MaxEntityType))
		}
	}
	if c.GRPC.Port < 0 || c.GRPC.Port > 65535 {
		errs = append(errs, fmt.Errorf("grpc.port %d is not a valid port", c.GRPC.Port))
	}
	if c.HTTP.Enabled && (c.HTTP.Port < 0 || c.HTTP.Port > 65535) {
		errs = append(errs, fmt.Errorf("http.port %d is not a valid port", c.HTTP.Port))
	}

	return errors.Join(errs...)
}
