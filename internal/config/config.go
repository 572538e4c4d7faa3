package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type AuthConfig struct {
	// SecretKey signs every issued token and verifies every presented
	// one. It must be identical in every service that accepts these
	// tokens. There is no default: a missing key is a configuration
	// error and the process refuses to start.
	SecretKey string
	TokenTTL  time.Duration
	HashCost  int
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	serverPort, _ := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "3306"))

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		log.Fatal("SECRET_KEY is not set")
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		log.Fatalf("Invalid TOKEN_TTL: %v", err)
	}

	hashCost, err := strconv.Atoi(getEnv("HASH_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil {
		log.Fatalf("Invalid HASH_COST: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "gouser"),
			Password: getEnv("DB_PASSWORD", "gopass"),
			Name:     getEnv("DB_NAME", "godb"),
		},
		Auth: AuthConfig{
			SecretKey: secret,
			TokenTTL:  ttl,
			HashCost:  hashCost,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
