package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorageDriverFile     = "file"
	StorageDriverDynamoDB = "dynamodb"
)

// Config groups the service settings. Values come from the environment,
// optionally from a .env or config.env file in the working directory.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	AWS     AWSConfig
	PDF     PDFConfig
}

type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns host:port for the listener.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig selects where draft documents are mirrored.
type StorageConfig struct {
	Driver      string // file | dynamodb
	Dir         string // file driver root
	DefaultSlot string
	DraftsTable string // dynamodb driver table
}

// AWSConfig is local-friendly: DynamoDB Local accepts any credentials.
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

// PDFConfig tunes the printable estimate. The built-in PDF fonts have no
// Cyrillic glyphs, so Russian estimates need FontFile.
type PDFConfig struct {
	FontFile string // UTF-8 TTF, optional
	Locale   string // BCP 47 tag for money formatting
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "smeta"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Driver:      strings.ToLower(getString(v, "STORAGE_DRIVER", StorageDriverFile)),
			Dir:         getString(v, "STORAGE_DIR", "./data"),
			DefaultSlot: getString(v, "DEFAULT_SLOT", "smeta-app-state-v1"),
			DraftsTable: getString(v, "DRAFTS_TABLE", "estimate_drafts"),
		},
		AWS: AWSConfig{
			Region:           getString(v, "AWS_REGION", "us-east-1"),
			AccessKeyID:      getString(v, "AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getString(v, "AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: getString(v, "DYNAMODB_ENDPOINT", ""),
		},
		PDF: PDFConfig{
			FontFile: getString(v, "PDF_FONT_FILE", ""),
			Locale:   getString(v, "PDF_LOCALE", "ru"),
		},
	}

	switch cfg.Storage.Driver {
	case StorageDriverFile, StorageDriverDynamoDB:
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	if cfg.HTTP.Port <= 0 {
		return nil, fmt.Errorf("invalid HTTP_PORT %d", cfg.HTTP.Port)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			return s
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}
