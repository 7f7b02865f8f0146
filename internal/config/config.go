package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatheredge.app/pkg/errors"
)

const (
	maxRedisDB         = 15
	maxPortNumber      = 65535
	maxPrewarmWorkers  = 32
	maxMemoryCacheSize = 1_000_000
	maxTTLms           = math.MaxInt64 / int64(time.Millisecond)
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Database    DatabaseConfig    `split_words:"true"`
	Geocoder    GeocoderConfig    `split_words:"true"`
	Forecast    ForecastConfig    `split_words:"true"`
	Cache       CacheConfig       `split_words:"true"`
	FlagStore   FlagStoreConfig   `split_words:"true"`
	Admin       AdminConfig       `split_words:"true"`
	Maintenance MaintenanceConfig `split_words:"true"`
	LogLevel    string            `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port        int    `envconfig:"SERVER_PORT" default:"8080"`
	Environment string `envconfig:"APP_ENV" default:"development"`
}

// IsProduction reports whether admin maintenance must be refused
func (s ServerConfig) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(s.Environment), "production")
}

// DatabaseDriver represents the relational backend of the cache table
type DatabaseDriver int

const (
	DatabaseDriverUnknown DatabaseDriver = iota
	DatabaseDriverPostgres
	DatabaseDriverSQLite
)

// String returns the string representation of the driver
func (d DatabaseDriver) String() string {
	switch d {
	case DatabaseDriverPostgres:
		return "postgres"
	case DatabaseDriverSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// IsValid checks if the driver is supported
func (d DatabaseDriver) IsValid() bool {
	return d == DatabaseDriverPostgres || d == DatabaseDriverSQLite
}

// DatabaseDriverFromString converts string to DatabaseDriver enum
func DatabaseDriverFromString(s string) DatabaseDriver {
	switch strings.ToLower(s) {
	case "postgres", "postgresql":
		return DatabaseDriverPostgres
	case "sqlite", "sqlite3":
		return DatabaseDriverSQLite
	default:
		return DatabaseDriverUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (d *DatabaseDriver) UnmarshalText(text []byte) error {
	*d = DatabaseDriverFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (d DatabaseDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type DatabaseConfig struct {
	Driver   DatabaseDriver `envconfig:"DB_DRIVER" default:"postgres"`
	Host     string         `envconfig:"DB_HOST" default:"localhost"`
	Port     int            `envconfig:"DB_PORT" default:"5432"`
	User     string         `envconfig:"DB_USER" default:"postgres"`
	Password string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string         `envconfig:"DB_NAME" default:"weatheredge"`
	SSLMode  string         `envconfig:"DB_SSL_MODE" default:"disable"`
	Path     string         `envconfig:"DB_PATH" default:"weatheredge.db"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == DatabaseDriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type GeocoderConfig struct {
	BaseURL        string `envconfig:"GEOCODER_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	UserAgent      string `envconfig:"GEOCODER_USER_AGENT" default:"weatheredge/1.0 (+https://github.com/weatheredge)"`
	TimeoutSeconds int    `envconfig:"GEOCODER_TIMEOUT_SECONDS" default:"10"`
	MinIntervalMS  int    `envconfig:"GEOCODER_MIN_INTERVAL_MS" default:"1000"`
	CacheTTLms     int64  `envconfig:"GEOCODE_CACHE_TTL_MS" default:"2592000000"`
	EnableLogging  bool   `envconfig:"GEOCODER_ENABLE_LOGGING" default:"true"`
	LogFilePath    string `envconfig:"GEOCODER_LOG_FILE_PATH" default:""`
}

type ForecastConfig struct {
	BaseURL        string `envconfig:"FORECAST_BASE_URL" default:"https://api.open-meteo.com/v1"`
	TimeoutSeconds int    `envconfig:"FORECAST_TIMEOUT_SECONDS" default:"10"`
	CacheTTLms     int64  `envconfig:"FORECAST_CACHE_TTL_MS" default:"600000"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type       CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	MemorySize int         `envconfig:"CACHE_MEMORY_SIZE" default:"1024"`
	Redis      RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// FlagStoreConfig selects where runtime flags are read from. The redis
// variant shares the connection settings of CacheConfig.Redis.
type FlagStoreConfig struct {
	Type     CacheType `envconfig:"FLAG_STORE_TYPE" default:"memory"`
	RedisKey string    `envconfig:"FLAG_STORE_REDIS_KEY" default:"weather:flags"`
	Seed     string    `envconfig:"FLAG_STORE_SEED" default:""`
}

type AdminConfig struct {
	PrewarmConcurrency int `envconfig:"ADMIN_PREWARM_CONCURRENCY" default:"4"`
}

type MaintenanceConfig struct {
	CleanupIntervalMinutes int `envconfig:"MAINTENANCE_CLEANUP_INTERVAL_MINUTES" default:"0"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Geocoder.Validate(); err != nil {
		return err
	}
	if err := c.Forecast.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.FlagStore.Validate(&c.Cache.Redis); err != nil {
		return err
	}
	if err := c.Admin.Validate(); err != nil {
		return err
	}
	if c.Maintenance.CleanupIntervalMinutes < 0 {
		return errors.NewConfigurationError("MAINTENANCE_CLEANUP_INTERVAL_MINUTES cannot be negative", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if !d.Driver.IsValid() {
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}
	if d.Driver == DatabaseDriverSQLite {
		if d.Path == "" {
			return errors.NewConfigurationError("DB_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	}
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (g *GeocoderConfig) Validate() error {
	if err := validateBaseURL("GEOCODER_BASE_URL", g.BaseURL); err != nil {
		return err
	}
	// the upstream rejects anonymous traffic
	if strings.TrimSpace(g.UserAgent) == "" {
		return errors.NewConfigurationError("GEOCODER_USER_AGENT cannot be empty", nil)
	}
	if g.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("GEOCODER_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if g.MinIntervalMS < 0 {
		return errors.NewConfigurationError("GEOCODER_MIN_INTERVAL_MS cannot be negative", nil)
	}
	if g.CacheTTLms < 1 || g.CacheTTLms > maxTTLms {
		return errors.NewConfigurationError(fmt.Sprintf("GEOCODE_CACHE_TTL_MS must be between 1 and %d", maxTTLms), nil)
	}
	return nil
}

func (f *ForecastConfig) Validate() error {
	if err := validateBaseURL("FORECAST_BASE_URL", f.BaseURL); err != nil {
		return err
	}
	if f.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("FORECAST_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if f.CacheTTLms < 1 || f.CacheTTLms > maxTTLms {
		return errors.NewConfigurationError(fmt.Sprintf("FORECAST_CACHE_TTL_MS must be between 1 and %d", maxTTLms), nil)
	}
	return nil
}

func validateBaseURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.MemorySize < 1 || c.MemorySize > maxMemoryCacheSize {
		return errors.NewConfigurationError("CACHE_MEMORY_SIZE must be between 1 and 1000000", nil)
	}
	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (f *FlagStoreConfig) Validate(redis *RedisConfig) error {
	if !f.Type.IsValid() {
		return errors.NewConfigurationError("FLAG_STORE_TYPE must be one of: memory, redis", nil)
	}
	if f.Type == CacheTypeRedis {
		if f.RedisKey == "" {
			return errors.NewConfigurationError("FLAG_STORE_REDIS_KEY cannot be empty", nil)
		}
		return redis.Validate()
	}
	return nil
}

func (a *AdminConfig) Validate() error {
	if a.PrewarmConcurrency < 1 || a.PrewarmConcurrency > maxPrewarmWorkers {
		return errors.NewConfigurationError("ADMIN_PREWARM_CONCURRENCY must be between 1 and 32", nil)
	}
	return nil
}
