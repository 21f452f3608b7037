package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/cofflyze/cofflyze-api/internal/domain/valueobjects"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Upload   UploadConfig
	History  HistoryConfig
	I18n     I18nConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	BaseURL      string // URL base da API para construir URIs RFC 7807
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Driver      string // mysql, postgres ou sqlite
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	Path        string // arquivo do sqlite
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type StorageConfig struct {
	Driver        string // s3 ou minio
	Bucket        string
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	UsePathStyle  bool
	PublicBaseURL string
}

type UploadConfig struct {
	MaxBytes int64
}

type HistoryConfig struct {
	TimeZone string
}

type I18nConfig struct {
	LocalesDir      string
	DefaultLanguage string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StorageDriverS3    = "s3"
	StorageDriverMinIO = "minio"
)

// Load carrega as configurações do arquivo .env (se existir) e do ambiente
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			Host:         v.GetString("HOST"),
			BaseURL:      v.GetString("API_BASE_URL"),
			ReadTimeout:  time.Duration(v.GetInt("SERVER_READ_TIMEOUT")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("SERVER_WRITE_TIMEOUT")) * time.Second,
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			Path:        v.GetString("DB_PATH"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(v.GetString("STORAGE_DRIVER")),
			Bucket:        v.GetString("BUCKET_NAME"),
			Endpoint:      v.GetString("STORAGE_ENDPOINT"),
			Region:        v.GetString("STORAGE_REGION"),
			AccessKey:     v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey:     v.GetString("STORAGE_SECRET_KEY"),
			UseSSL:        v.GetBool("STORAGE_USE_SSL"),
			UsePathStyle:  v.GetBool("STORAGE_PATH_STYLE"),
			PublicBaseURL: v.GetString("STORAGE_PUBLIC_BASE_URL"),
		},
		Upload: UploadConfig{
			MaxBytes: v.GetInt64("UPLOAD_MAX_BYTES"),
		},
		History: HistoryConfig{
			TimeZone: v.GetString("HISTORY_TIMEZONE"),
		},
		I18n: I18nConfig{
			LocalesDir:      v.GetString("I18N_LOCALES_DIR"),
			DefaultLanguage: v.GetString("I18N_DEFAULT_LANGUAGE"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("API_BASE_URL", "http://localhost:8000")
	v.SetDefault("SERVER_READ_TIMEOUT", 30)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_PATH", "cofflyze.db")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)

	v.SetDefault("STORAGE_DRIVER", StorageDriverS3)
	v.SetDefault("BUCKET_NAME", "cofflyze-images")
	v.SetDefault("STORAGE_ENDPOINT", "https://storage.googleapis.com")
	v.SetDefault("STORAGE_REGION", "auto")
	v.SetDefault("STORAGE_USE_SSL", true)
	v.SetDefault("STORAGE_PATH_STYLE", true)
	v.SetDefault("STORAGE_PUBLIC_BASE_URL", "https://storage.googleapis.com")

	v.SetDefault("UPLOAD_MAX_BYTES", 5*1024*1024)
	v.SetDefault("HISTORY_TIMEZONE", valueobjects.DefaultTimeZone)

	v.SetDefault("I18N_LOCALES_DIR", "./internal/infrastructure/i18n/locales")
	v.SetDefault("I18N_DEFAULT_LANGUAGE", "en")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// Validate verifica combinações inválidas antes de abrir conexões
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver))
	}

	switch c.Storage.Driver {
	case StorageDriverS3, StorageDriverMinIO:
	default:
		errs = append(errs, fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver))
	}

	if c.Storage.Bucket == "" {
		errs = append(errs, errors.New("BUCKET_NAME is required"))
	}

	if c.Upload.MaxBytes <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_BYTES must be positive"))
	}

	if _, err := valueobjects.LoadTimeZone(c.History.TimeZone); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// DSN retorna a connection string do driver configurado
func (d *DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverPostgres:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
		)
	case DriverSQLite:
		return d.Path
	default:
		// clientFoundRows faz o UPDATE contar linhas encontradas, não alteradas
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&clientFoundRows=true",
			d.User, d.Password, d.Host, d.Port, d.DBName,
		)
	}
}
