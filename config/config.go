package config

import (
	"log"

	"github.com/spf13/viper"

	"roombook/services/schedule"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	Timezone          string `mapstructure:"TIMEZONE"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB      int    `mapstructure:"REDIS_AUTH_DB"`
	RedisTaskQueueDB int    `mapstructure:"REDIS_TASK_QUEUE_DB"`

	// Booking policy. Older clients hardcoded divergent values for these;
	// the server values are canonical.
	MinBookingDurationMinutes int `mapstructure:"MIN_BOOKING_DURATION_MINUTES"`
	MaxBookingDurationHours   int `mapstructure:"MAX_BOOKING_DURATION_HOURS"`
	MaxBookingDaysAhead       int `mapstructure:"MAX_BOOKING_DAYS_AHEAD"`
	DefaultBookingHours       int `mapstructure:"DEFAULT_BOOKING_DURATION_HOURS"`
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

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_TASK_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "roombook")
	viper.SetDefault("MIN_BOOKING_DURATION_MINUTES", 15)
	viper.SetDefault("MAX_BOOKING_DURATION_HOURS", 8)
	viper.SetDefault("MAX_BOOKING_DAYS_AHEAD", 10)
	viper.SetDefault("DEFAULT_BOOKING_DURATION_HOURS", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// BookingPolicy materializes the configured booking limits for the schedule core.
func BookingPolicy() schedule.BookingPolicy {
	return schedule.BookingPolicy{
		MinDurationMinutes:   int64(AppConfig.MinBookingDurationMinutes),
		MaxDurationHours:     int64(AppConfig.MaxBookingDurationHours),
		MaxAdvanceDays:       int64(AppConfig.MaxBookingDaysAhead),
		DefaultDurationHours: int64(AppConfig.DefaultBookingHours),
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
