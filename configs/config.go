package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Cache TTLs per view.
	TTLRestaurantList   time.Duration
	TTLRestaurantDetail time.Duration
	TTLAnalytics        time.Duration
}

func LoadConfig() *Config {
	// .env is optional outside local dev.
	_ = godotenv.Load()

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "zomato.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		TTLRestaurantList:   time.Duration(getEnvInt("CACHE_TTL_RESTAURANT_LIST", 300)) * time.Second,
		TTLRestaurantDetail: time.Duration(getEnvInt("CACHE_TTL_RESTAURANT_DETAIL", 600)) * time.Second,
		TTLAnalytics:        time.Duration(getEnvInt("CACHE_TTL_ANALYTICS", 120)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}
