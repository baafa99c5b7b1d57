package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	EnabledServices   string `mapstructure:"ENABLED_SERVICES"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Token verification. JWTPublicKey (PEM) takes precedence over JWTSecret.
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	JWTPublicKey string `mapstructure:"JWT_PUBLIC_KEY"`
	JWTIssuer    string `mapstructure:"JWT_ISSUER"`

	// Identity provider admin API.
	IdentityEnabled      bool   `mapstructure:"IDENTITY_ENABLED"`
	KeycloakURL          string `mapstructure:"KEYCLOAK_URL"`
	KeycloakRealm        string `mapstructure:"KEYCLOAK_REALM"`
	KeycloakClientID     string `mapstructure:"KEYCLOAK_CLIENT_ID"`
	KeycloakClientSecret string `mapstructure:"KEYCLOAK_CLIENT_SECRET"`

	// File storage.
	StorageDriver       string `mapstructure:"STORAGE_DRIVER"`
	UploadDir           string `mapstructure:"UPLOAD_DIR"`
	PublicBaseURL       string `mapstructure:"PUBLIC_BASE_URL"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `mapstructure:"CLOUDINARY_FOLDER"`

	// Scheduling.
	Timezone          string        `mapstructure:"TIMEZONE"`
	SlotMinutes       int           `mapstructure:"SLOT_MINUTES"`
	DashboardCacheTTL time.Duration `mapstructure:"DASHBOARD_CACHE_TTL"`
	RemindersEnabled  bool          `mapstructure:"REMINDERS_ENABLED"`
	ReminderLead      time.Duration `mapstructure:"REMINDER_LEAD"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("ENABLED_SERVICES", "appointments,doctor,users,reviews")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "medibook")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_PUBLIC_KEY", "")
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("IDENTITY_ENABLED", false)
	viper.SetDefault("KEYCLOAK_URL", "http://localhost:8180")
	viper.SetDefault("KEYCLOAK_REALM", "medibook")
	viper.SetDefault("KEYCLOAK_CLIENT_ID", "medibook-admin")
	viper.SetDefault("KEYCLOAK_CLIENT_SECRET", "")
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("CLOUDINARY_FOLDER", "medibook")
	viper.SetDefault("TIMEZONE", "UTC")
	viper.SetDefault("SLOT_MINUTES", 30)
	viper.SetDefault("DASHBOARD_CACHE_TTL", "60s")
	viper.SetDefault("REMINDERS_ENABLED", false)
	viper.SetDefault("REMINDER_LEAD", "1h")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// ServiceEnabled reports whether the named service area is listed in ENABLED_SERVICES.
func ServiceEnabled(name string) bool {
	for _, s := range strings.Split(AppConfig.EnabledServices, ",") {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return true
		}
	}
	return false
}

// Location returns the configured time zone, falling back to UTC.
func Location() *time.Location {
	if AppConfig.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
