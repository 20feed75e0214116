package config

import (
	"os"
	"strconv"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Host string
	Port string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	JWTSecret    string
	TokenTTLHour int
}

// Stripe configuration
type StripeConfig struct {
	SecretKey string
}

// MinIO configuration for payslip storage
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Config holds all application configuration
type Config struct {
	Env      string
	LogLevel string
	Server   ServerConfig
	Mongo    MongoConfig
	Auth     AuthConfig
	Stripe   StripeConfig
	Minio    MinioConfig
}

// Default configuration values
const (
	DefaultEnv          = "development"
	DefaultLogLevel     = "info"
	DefaultServerHost   = ""
	DefaultServerPort   = "5000"
	DefaultMongoURI     = "mongodb://localhost:27017/employeeManagement"
	DefaultMongoDB      = "employeeManagement"
	DefaultTokenTTLHour = 4
	DefaultMinioBucket  = "payslips"
)

// New returns a new Config populated from the environment
func New() *Config {
	return &Config{
		Env:      getEnv("APP_ENV", DefaultEnv),
		LogLevel: getEnv("LOG_LEVEL", DefaultLogLevel),
		Server: ServerConfig{
			Host: getEnv("HOST", DefaultServerHost),
			Port: getEnv("PORT", DefaultServerPort),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", ""),
			TokenTTLHour: getEnvInt("TOKEN_TTL_HOURS", DefaultTokenTTLHour),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		},
		Minio: MinioConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", DefaultMinioBucket),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// Address returns the listen address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}
