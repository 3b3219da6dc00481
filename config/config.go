package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	JwtSecret  string
	DBPath     string
	Production bool
}

func LoadConfig() Config {
	// El archivo .env es opcional, las variables pueden venir del entorno
	_ = godotenv.Load()

	return Config{
		Port:       getEnv("PORT", "3000"),
		JwtSecret:  getEnv("JWT_ACCESS_SECRET", ""),
		DBPath:     getEnv("DB_PATH", "db/database.db"),
		Production: getEnv("PRODUCTION", "false") == "true",
	}
}

// getEnv obtiene una variable de entorno o usa un valor por defecto
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
