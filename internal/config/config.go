package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "YOUTHOPIA"

type AppConfig struct {
	API     *APIConfig     `mapstructure:"api"`
	Gin     *GinConfig     `mapstructure:"gin"`
	Storage *StorageConfig `mapstructure:"storage"`
	Ledger  *LedgerConfig  `mapstructure:"ledger"`
	Photos  *PhotosConfig  `mapstructure:"photos"`
	Jobs    *JobsConfig    `mapstructure:"jobs"`
}

type APIConfig struct {
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	BaseURL            string        `mapstructure:"base_url"`
	Environment        string        `mapstructure:"environment"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	LogLevel           string        `mapstructure:"log_level"`
	TokenTTL           time.Duration `mapstructure:"token_ttl"`
	Port               string        `mapstructure:"port"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type StorageConfig struct {
	Driver   string          `mapstructure:"driver"` // "sqlite" or "postgres"
	SQLite   *SQLiteConfig   `mapstructure:"sqlite"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

type LedgerConfig struct {
	RequireRegistration bool `mapstructure:"require_registration"`
}

// PhotosConfig points at an S3 compatible bucket. Uploads are disabled when Bucket is empty.
type PhotosConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	CDNBaseURL      string `mapstructure:"cdn_base_url"`
}

type JobsConfig struct {
	StatsInterval time.Duration `mapstructure:"stats_interval"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode)
}

// Every key needs a default so AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.base_url", "localhost:4000")
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.jwt_signing_key", "")
	v.SetDefault("api.log_level", "")
	v.SetDefault("api.token_ttl", 24*time.Hour)
	v.SetDefault("api.port", "4000")
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.sqlite.path", "youthopia.db")
	v.SetDefault("storage.postgres.host", "localhost")
	v.SetDefault("storage.postgres.port", "5432")
	v.SetDefault("storage.postgres.user", "")
	v.SetDefault("storage.postgres.password", "")
	v.SetDefault("storage.postgres.db", "youthopia")
	v.SetDefault("storage.postgres.sslmode", "disable")
	v.SetDefault("ledger.require_registration", true)
	v.SetDefault("photos.endpoint", "")
	v.SetDefault("photos.region", "auto")
	v.SetDefault("photos.bucket", "")
	v.SetDefault("photos.access_key_id", "")
	v.SetDefault("photos.access_key_secret", "")
	v.SetDefault("photos.cdn_base_url", "")
	v.SetDefault("jobs.stats_interval", 10*time.Minute)
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return v
}

// Load reads configPath and overlays YOUTHOPIA_* environment variables.
// A missing file is not an error; defaults and the environment still apply.
func Load(configPath string) (*AppConfig, error) {
	v := newViper(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if conf.API.JWTSigningKey == "" {
		return nil, errors.New("api.jwt_signing_key is required")
	}

	return conf, nil
}

// Watch reloads configPath whenever it changes on disk and hands the fresh
// config to onChange. Invalid intermediate edits are logged and skipped.
func Watch(configPath string, onChange func(*AppConfig)) {
	v := newViper(configPath)
	if err := v.ReadInConfig(); err != nil {
		zap.L().Warn("config watch disabled", zap.String("path", configPath), zap.Error(err))
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		conf, err := unmarshal(v)
		if err != nil {
			zap.L().Error("config reload failed", zap.String("file", e.Name), zap.Error(err))
			return
		}

		zap.L().Info("config reloaded", zap.String("file", e.Name))
		onChange(conf)
	})
	v.WatchConfig()
}
