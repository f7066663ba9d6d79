package config

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

func (c DBConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

type MongoConfig struct {
	URI      string
	Database string
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

func LoadEnv() error {
	err := godotenv.Load()
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func InitConfig() error {
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("client.origin", "*")
	viper.SetDefault("db.driver", DriverPostgres)
	viper.SetDefault("verse.api", "https://bible-api.com")
	viper.SetDefault("verse.cache-ttl", 24*time.Hour)
	viper.SetDefault("site.base-url", "https://dailylight.blog")

	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}

func DBConfigFromEnv() DBConfig {
	return DBConfig{
		Username: os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		DBName:   os.Getenv("POSTGRES_DATABASE"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func MongoConfigFromEnv() MongoConfig {
	cfg := MongoConfig{
		URI:      os.Getenv("MONGODB_URI"),
		Database: os.Getenv("MONGODB_DATABASE"),
	}
	if cfg.Database == "" {
		cfg.Database = "dailylight"
	}
	return cfg
}

// Driver reports the configured post store backend.
func Driver() (string, error) {
	driver := strings.ToLower(strings.TrimSpace(viper.GetString("db.driver")))
	switch driver {
	case DriverPostgres, DriverMongo, DriverMemory:
		return driver, nil
	default:
		return "", fmt.Errorf("unknown db.driver %q", driver)
	}
}
