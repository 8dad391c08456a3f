package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidStoreBackend = errors.New("STORE_BACKEND must be one of: redis, memory")

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Store     StoreConfig
	Assistant AssistantConfig
	Upload    UploadConfig
}

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	CORSOrigin string
	// PublicURL is where the portal pages are served; emailed links point here.
	PublicURL  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	TimeZone string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type AuthConfig struct {
	MaxLoginAttempts     int
	LockoutDuration      time.Duration
	ResetTokenTTL        time.Duration
	VerifyTokenTTL       time.Duration
	RequireVerifiedEmail bool
}

// StoreConfig controls the key/value record store that backs the portal lists.
type StoreConfig struct {
	Backend        string
	Namespace      string
	ChatHistoryCap int
	ReportCap      int
	ActivityCap    int
}

type AssistantConfig struct {
	OpenAIKey    string
	Model        string
	Timeout      time.Duration
	ContextTurns int
}

type UploadConfig struct {
	MaxFileSize    int64
	MaxFiles       int
	ImageTypes     []string
	DocumentTypes  []string
	DICOMTypes     []string
	PreviewSize    uint
	Timeout        time.Duration
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

const (
	StoreBackendRedis  = "redis"
	StoreBackendMemory = "memory"
)

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("PUBLIC_URL", "http://localhost:8080")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_TIMEZONE", "UTC")

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")

	viper.SetDefault("JWT_ACCESS_EXPIRY", "24h")
	viper.SetDefault("JWT_REFRESH_EXPIRY", "168h")

	viper.SetDefault("AUTH_MAX_LOGIN_ATTEMPTS", 5)
	viper.SetDefault("AUTH_LOCKOUT_DURATION", "15m")
	viper.SetDefault("AUTH_RESET_TOKEN_TTL", "1h")
	viper.SetDefault("AUTH_VERIFY_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_REQUIRE_VERIFIED_EMAIL", false)

	viper.SetDefault("STORE_BACKEND", StoreBackendRedis)
	viper.SetDefault("STORE_NAMESPACE", "edoc:")
	viper.SetDefault("STORE_CHAT_HISTORY_CAP", 50)
	viper.SetDefault("STORE_REPORT_CAP", 100)
	viper.SetDefault("STORE_ACTIVITY_CAP", 20)

	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("ASSISTANT_TIMEOUT", "30s")
	viper.SetDefault("ASSISTANT_CONTEXT_TURNS", 5)

	viper.SetDefault("UPLOAD_MAX_FILE_SIZE", 50*1024*1024)
	viper.SetDefault("UPLOAD_MAX_FILES", 10)
	viper.SetDefault("UPLOAD_IMAGE_TYPES", "image/jpeg,image/png,image/gif,image/bmp,image/tiff")
	viper.SetDefault("UPLOAD_DOCUMENT_TYPES", "application/pdf,text/csv,text/plain,application/vnd.ms-excel")
	viper.SetDefault("UPLOAD_DICOM_TYPES", "application/dicom")
	viper.SetDefault("UPLOAD_PREVIEW_SIZE", 256)
	viper.SetDefault("UPLOAD_TIMEOUT", "5m")
	viper.SetDefault("MINIO_BUCKET", "edoc-uploads")
}

func LoadConfig() (*Config, error) {
	setDefaults()
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// .env is optional; environment variables and defaults are enough to boot.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	backend := strings.ToLower(viper.GetString("STORE_BACKEND"))
	if backend != StoreBackendRedis && backend != StoreBackendMemory {
		return nil, ErrInvalidStoreBackend
	}

	config := &Config{
		App: AppConfig{
			Port:       viper.GetString("APP_PORT"),
			Env:        viper.GetString("APP_ENV"),
			LogLevel:   viper.GetString("LOG_LEVEL"),
			CORSOrigin: viper.GetString("CORS_ORIGIN"),
			PublicURL:  strings.TrimRight(viper.GetString("PUBLIC_URL"), "/"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			TimeZone: viper.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  durationOr("JWT_ACCESS_EXPIRY", 24*time.Hour),
			RefreshExpiry: durationOr("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Auth: AuthConfig{
			MaxLoginAttempts:     viper.GetInt("AUTH_MAX_LOGIN_ATTEMPTS"),
			LockoutDuration:      durationOr("AUTH_LOCKOUT_DURATION", 15*time.Minute),
			ResetTokenTTL:        durationOr("AUTH_RESET_TOKEN_TTL", time.Hour),
			VerifyTokenTTL:       durationOr("AUTH_VERIFY_TOKEN_TTL", 24*time.Hour),
			RequireVerifiedEmail: viper.GetBool("AUTH_REQUIRE_VERIFIED_EMAIL"),
		},
		Store: StoreConfig{
			Backend:        backend,
			Namespace:      viper.GetString("STORE_NAMESPACE"),
			ChatHistoryCap: viper.GetInt("STORE_CHAT_HISTORY_CAP"),
			ReportCap:      viper.GetInt("STORE_REPORT_CAP"),
			ActivityCap:    viper.GetInt("STORE_ACTIVITY_CAP"),
		},
		Assistant: AssistantConfig{
			OpenAIKey:    viper.GetString("OPENAI_API_KEY"),
			Model:        viper.GetString("OPENAI_MODEL"),
			Timeout:      durationOr("ASSISTANT_TIMEOUT", 30*time.Second),
			ContextTurns: viper.GetInt("ASSISTANT_CONTEXT_TURNS"),
		},
		Upload: UploadConfig{
			MaxFileSize:    viper.GetInt64("UPLOAD_MAX_FILE_SIZE"),
			MaxFiles:       viper.GetInt("UPLOAD_MAX_FILES"),
			ImageTypes:     splitList(viper.GetString("UPLOAD_IMAGE_TYPES")),
			DocumentTypes:  splitList(viper.GetString("UPLOAD_DOCUMENT_TYPES")),
			DICOMTypes:     splitList(viper.GetString("UPLOAD_DICOM_TYPES")),
			PreviewSize:    viper.GetUint("UPLOAD_PREVIEW_SIZE"),
			Timeout:        durationOr("UPLOAD_TIMEOUT", 5*time.Minute),
			MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
			MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
			MinioBucket:    viper.GetString("MINIO_BUCKET"),
			MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		},
	}

	return config, nil
}

func durationOr(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
