package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Upload     UploadConfig
	Janitor    JanitorConfig
	Digest     DigestConfig
	AssemblyAI AssemblyAIConfig
	Groq       GroqConfig
	Redis      RedisConfig
	Storage    StorageConfig
	Database   DatabaseConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// UploadConfig controls which audio files are accepted and where they live
type UploadConfig struct {
	Dir               string   `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxSizeMB         int      `envconfig:"MAX_UPLOAD_MB" default:"50"`
	AllowedExtensions []string `envconfig:"ALLOWED_EXTENSIONS" default:".mp3,.wav,.m4a,.ogg,.flac,.webm"`
}

// JanitorConfig holds the storage janitor policy
type JanitorConfig struct {
	Enabled      bool          `envconfig:"JANITOR_ENABLED" default:"true"`
	MaxStorageMB int64         `envconfig:"MAX_STORAGE_MB" default:"300"`
	TargetRatio  float64       `envconfig:"TARGET_RATIO" default:"0.8"`
	Interval     time.Duration `envconfig:"CLEANUP_INTERVAL" default:"30m"`
	WatchUploads bool          `envconfig:"WATCH_UPLOADS" default:"true"`
}

// DigestConfig holds the summarization engine settings
type DigestConfig struct {
	TargetSentences       int      `envconfig:"TARGET_SENTENCES" default:"3"`
	MaxActionItems        int      `envconfig:"MAX_ACTION_ITEMS" default:"5"`
	MaxBreakdownSentences int      `envconfig:"MAX_BREAKDOWN_SENTENCES" default:"5"`
	Participants          []string `envconfig:"PARTICIPANTS"`
}

// AssemblyAIConfig holds speech-to-text provider settings
type AssemblyAIConfig struct {
	APIKey   string        `envconfig:"ASSEMBLYAI_API_KEY"`
	Language string        `envconfig:"ASSEMBLYAI_LANGUAGE" default:"en"`
	Timeout  time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"5m"`
}

// GroqConfig holds settings for the optional summary backfill
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY"`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama-3.1-8b-instant"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled   bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host      string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port      string        `envconfig:"REDIS_PORT" default:"6379"`
	Password  string        `envconfig:"REDIS_PASSWORD"`
	DB        int           `envconfig:"REDIS_DB" default:"0"`
	ResultTTL time.Duration `envconfig:"RESULT_TTL" default:"24h"`
}

// StorageConfig holds the MinIO archive configuration
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"summaro"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Enabled     bool   `envconfig:"DB_ENABLED" default:"false"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"summaro"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}
	return FromEnv()
}

// FromEnv reads the process environment without touching .env files
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	cfg.Upload.AllowedExtensions = normalizeExtensions(cfg.Upload.AllowedExtensions)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		return fmt.Errorf("ALLOWED_EXTENSIONS must not be empty")
	}
	if c.Janitor.TargetRatio <= 0 || c.Janitor.TargetRatio > 1 {
		return fmt.Errorf("TARGET_RATIO must be in (0, 1], got %v", c.Janitor.TargetRatio)
	}
	if c.Janitor.MaxStorageMB <= 0 {
		return fmt.Errorf("MAX_STORAGE_MB must be positive")
	}
	if c.Janitor.Enabled && c.Janitor.Interval <= 0 {
		return fmt.Errorf("CLEANUP_INTERVAL must be positive")
	}
	if c.Digest.TargetSentences < 1 || c.Digest.TargetSentences > 10 {
		return fmt.Errorf("TARGET_SENTENCES must be between 1 and 10")
	}
	if c.Digest.MaxActionItems < 0 {
		return fmt.Errorf("MAX_ACTION_ITEMS must not be negative")
	}
	if c.Database.AutoMigrate && c.IsProduction() {
		return fmt.Errorf("DB_AUTO_MIGRATE is not allowed in production")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// MaxUploadBytes returns the upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxSizeMB) << 20
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
