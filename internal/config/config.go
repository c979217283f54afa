package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported DB_DRIVER values
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	ServerPort           int
	GinMode              string
	LogLevel             string
	DBDriver             string
	DBPath               string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	FixturesDir          string
	ValidateCreateFields bool
}

func Load() *Config {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "file::memory:?_foreign_keys=on")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "marketuser")
	v.SetDefault("DB_PASSWORD", "marketpassword")
	v.SetDefault("DB_NAME", "marketplace")
	v.SetDefault("FIXTURES_DIR", "fixtures")
	v.SetDefault("VALIDATE_CREATE_FIELDS", true)

	return &Config{
		ServerPort:           v.GetInt("SERVER_PORT"),
		GinMode:              v.GetString("GIN_MODE"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		DBDriver:             v.GetString("DB_DRIVER"),
		DBPath:               v.GetString("DB_PATH"),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		FixturesDir:          v.GetString("FIXTURES_DIR"),
		ValidateCreateFields: v.GetBool("VALIDATE_CREATE_FIELDS"),
	}
}
