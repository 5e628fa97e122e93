package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Vision VisionConfig
	OCR    OCRConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds settings for archiving masked pages to object storage.
// Archiving is disabled when Bucket is empty.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// VisionConfig holds Google Cloud Vision API settings.
type VisionConfig struct {
	APIKey          string `mapstructure:"api_key"`
	CredentialsPath string `mapstructure:"credentials_path"`
	Endpoint        string `mapstructure:"endpoint"`
	TimeoutSecs     int    `mapstructure:"timeout_secs"`
}

// OCRConfig holds the tunable knobs of the masking and extraction pipeline.
// These values mirror the thresholds the patterns were tuned against; they are
// data, not logic, and may drift as new document samples arrive.
type OCRConfig struct {
	BlurRadius         float64 `mapstructure:"blur_radius"`
	RasterDPI          int     `mapstructure:"raster_dpi"`
	MaxPages           int     `mapstructure:"max_pages"`
	AddressMinTokenLen int     `mapstructure:"address_min_token_len"`
	NameWindow         int     `mapstructure:"name_window"`
	VerifyConcurrency  int     `mapstructure:"verify_concurrency"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the HANAINPLAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HANAINPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8090")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "hanainplan")
	v.SetDefault("db.password", "hanainplan123")
	v.SetDefault("db.name", "hanainplan")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults (archiving off unless a bucket is configured)
	v.SetDefault("s3.region", "ap-northeast-2")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")

	// Vision defaults
	v.SetDefault("vision.api_key", "")
	v.SetDefault("vision.credentials_path", "")
	v.SetDefault("vision.endpoint", "https://vision.googleapis.com/v1/images:annotate")
	v.SetDefault("vision.timeout_secs", 30)

	// OCR pipeline defaults
	v.SetDefault("ocr.blur_radius", 12.0)
	v.SetDefault("ocr.raster_dpi", 300)
	v.SetDefault("ocr.max_pages", 10)
	v.SetDefault("ocr.address_min_token_len", 3)
	v.SetDefault("ocr.name_window", 100)
	v.SetDefault("ocr.verify_concurrency", 4)

	// CORS defaults (frontend dev origins)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://localhost:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "HANAINPLAN_SERVER_PORT",
		"server.read_timeout":       "HANAINPLAN_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "HANAINPLAN_SERVER_WRITE_TIMEOUT",
		"server.environment":        "HANAINPLAN_SERVER_ENVIRONMENT",
		"db.host":                   "HANAINPLAN_DB_HOST",
		"db.port":                   "HANAINPLAN_DB_PORT",
		"db.user":                   "HANAINPLAN_DB_USER",
		"db.password":               "HANAINPLAN_DB_PASSWORD",
		"db.name":                   "HANAINPLAN_DB_NAME",
		"db.sslmode":                "HANAINPLAN_DB_SSLMODE",
		"db.max_open":               "HANAINPLAN_DB_MAX_OPEN",
		"db.max_idle":               "HANAINPLAN_DB_MAX_IDLE",
		"s3.region":                 "HANAINPLAN_S3_REGION",
		"s3.bucket":                 "HANAINPLAN_S3_BUCKET",
		"s3.endpoint":               "HANAINPLAN_S3_ENDPOINT",
		"s3.access_key":             "HANAINPLAN_S3_ACCESS_KEY",
		"s3.secret_key":             "HANAINPLAN_S3_SECRET_KEY",
		"vision.api_key":            "HANAINPLAN_VISION_API_KEY",
		"vision.credentials_path":   "HANAINPLAN_VISION_CREDENTIALS_PATH",
		"vision.endpoint":           "HANAINPLAN_VISION_ENDPOINT",
		"vision.timeout_secs":       "HANAINPLAN_VISION_TIMEOUT_SECS",
		"ocr.blur_radius":           "HANAINPLAN_OCR_BLUR_RADIUS",
		"ocr.raster_dpi":            "HANAINPLAN_OCR_RASTER_DPI",
		"ocr.max_pages":             "HANAINPLAN_OCR_MAX_PAGES",
		"ocr.address_min_token_len": "HANAINPLAN_OCR_ADDRESS_MIN_TOKEN_LEN",
		"ocr.name_window":           "HANAINPLAN_OCR_NAME_WINDOW",
		"ocr.verify_concurrency":    "HANAINPLAN_OCR_VERIFY_CONCURRENCY",
		"cors.allowed_origins":      "HANAINPLAN_CORS_ALLOWED_ORIGINS",
		"log.level":                 "HANAINPLAN_LOG_LEVEL",
		"log.format":                "HANAINPLAN_LOG_FORMAT",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// viper reads comma-separated origins from env as a single string
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}

	return &cfg, nil
}
