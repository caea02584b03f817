package config

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"members-only/models"
)

// Config is loaded once at startup and passed into constructors. Business
// logic never reads the environment directly.
type Config struct {
	Port           string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	SessionSecret  string
	SessionTTL     time.Duration
	MemberPassword string
	AdminPassword  string
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "members_only"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		SessionSecret:  getEnv("SESSION_SECRET", "your-secret-key-change-this-in-production"),
		SessionTTL:     24 * time.Hour,
		MemberPassword: os.Getenv("MEMBER_PASSWORD"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// InitDB opens the postgres connection and migrates the schema.
func InitDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Message{}); err != nil {
		return nil, err
	}

	return db, nil
}
