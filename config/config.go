package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisLockDB          int    `mapstructure:"REDIS_LOCK_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Google Calendar (service account).
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	GoogleCalendarID      string `mapstructure:"GOOGLE_CALENDAR_ID"`

	// Resend email delivery.
	ResendAPIKey  string `mapstructure:"RESEND_API_KEY"`
	FromEmail     string `mapstructure:"FROM_EMAIL"`
	LecturerEmail string `mapstructure:"LECTURER_EMAIL"`
	SupportEmail  string `mapstructure:"SUPPORT_EMAIL"`
	ZoomLink      string `mapstructure:"ZOOM_LINK"`

	// FileMaker Data API (workshop records).
	FileMakerURL  string `mapstructure:"FILEMAKER_URL"`
	FileMakerDB   string `mapstructure:"FILEMAKER_DB"`
	FileMakerUser string `mapstructure:"FILEMAKER_USER"`
	FileMakerPass string `mapstructure:"FILEMAKER_PASS"`

	// Booking business rules.
	BookingLeadTimeHours int `mapstructure:"BOOKING_LEAD_TIME_HOURS"`
	BookingSlotMinutes   int `mapstructure:"BOOKING_SLOT_MINUTES"`

	// Rate limits.
	AvailabilityRequestsPerMin int `mapstructure:"AVAILABILITY_REQUESTS_PER_MIN"`
	BookingRequestsPerHour     int `mapstructure:"BOOKING_REQUESTS_PER_HOUR"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "bizschool")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_LOCK_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("GOOGLE_CALENDAR_ID", "primary")
	viper.SetDefault("BOOKING_LEAD_TIME_HOURS", 4)
	viper.SetDefault("BOOKING_SLOT_MINUTES", 30)
	viper.SetDefault("AVAILABILITY_REQUESTS_PER_MIN", 10)
	viper.SetDefault("BOOKING_REQUESTS_PER_HOUR", 3)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// BookingLeadTime returns the minimum gap between "now" and a bookable slot.
func BookingLeadTime() time.Duration {
	return time.Duration(AppConfig.BookingLeadTimeHours) * time.Hour
}

// BookingSlotDuration returns the fixed length of a coaching slot.
func BookingSlotDuration() time.Duration {
	return time.Duration(AppConfig.BookingSlotMinutes) * time.Minute
}
