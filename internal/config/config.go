package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	MongoURI    string
	DBName      string
	TokenSecret string
	Env         string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// mongoURI prefers MONGO_URI; otherwise it builds the SRV URI from the
// cluster credentials the way the deployment supplies them.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	cluster := getenv("DB_CLUSTER", "localhost:27017")
	user := os.Getenv("DB_USER")
	if user == "" {
		return fmt.Sprintf("mongodb://%s", cluster)
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", user, os.Getenv("DB_PASSWORD"), cluster)
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		Addr:        ":" + getenv("PORT", "5000"),
		MongoURI:    mongoURI(),
		DBName:      getenv("DB_NAME", "vituGlow"),
		TokenSecret: getenv("DB_ACCESS_TOKEN", "dev-secret"),
		Env:         getenv("APP_ENV", "development"),
	}
	log.Printf("[config] PORT=%s", cfg.Addr)
	log.Printf("[config] DB_NAME=%s", cfg.DBName)
	log.Printf("[config] APP_ENV=%s", cfg.Env)
	return cfg
}

func (c Config) Production() bool { return c.Env == "production" }
