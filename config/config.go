package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Defaults DefaultsConfig
}

type ServerConfig struct {
	Port               string
	Env                string
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
}

type DatabaseConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type DefaultsConfig struct {
	SeedPassword string `mapstructure:"seed_password"`
	OwnerEmail   string `mapstructure:"owner_email"`
	OrderPrefix  string `mapstructure:"order_prefix"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()

	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	viper.BindEnv("DB_DSN", "DATABASE_URL")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 24)
	viper.SetDefault("DB_DRIVER", "sqlite")
	// Shared in-memory database: catalog/order state lives for the lifetime
	// of the process, matching the session-scoped original.
	viper.SetDefault("DB_DSN", "file::memory:?cache=shared")
	viper.SetDefault("SEED_PASSWORD", "123")
	viper.SetDefault("OWNER_EMAIL", "owner@system.com")
	viper.SetDefault("ORDER_PREFIX", "ORD")

	// Manually map configuration to struct
	AppConfig = &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			Env:                viper.GetString("SERVER_ENV"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			DSN:      viper.GetString("DB_DSN"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Defaults: DefaultsConfig{
			SeedPassword: viper.GetString("SEED_PASSWORD"),
			OwnerEmail:   viper.GetString("OWNER_EMAIL"),
			OrderPrefix:  viper.GetString("ORDER_PREFIX"),
		},
	}

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- JWT Secret: %s", func() string {
		if AppConfig.Server.JWTSecret != "" {
			return "SET"
		}
		return "NOT SET"
	}())
	log.Printf("- Database Driver: %s", AppConfig.Database.Driver)
}
