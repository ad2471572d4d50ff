package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerAddress string
	MongoURI      string
	MongoDB       string
	UploadDir     string
	StaticDir     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, reading environment only")
	}

	return &Config{
		ServerAddress: ":" + getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "profilecard"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		StaticDir:     getEnv("STATIC_DIR", "./web"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
