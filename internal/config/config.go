package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	LogLevel   string
	Port       string
	DBType     string
	MongoURI   string
	MongoDB    string
	DBDSN      string
	FileEvents string
	FileGoals  string
	FileTasks  string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:        getEnv("APP_ENV", "development"),
			LogLevel:   getEnv("LOG_LEVEL", "info"),
			Port:       getEnv("PORT", "5000"),
			DBType:     getEnv("STORAGE_BACKEND", "file"),
			MongoURI:   getEnv("MONGO_URI", ""),
			MongoDB:    getEnv("MONGO_DB", "calendar"),
			DBDSN:      getEnv("POSTGRES_DSN", ""),
			FileEvents: getEnv("EVENTS_FILE", "data/events.json"),
			FileGoals:  getEnv("GOALS_FILE", "data/goals.json"),
			FileTasks:  getEnv("TASKS_FILE", "data/tasks.json"),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	switch c.DBType {
	case "mongo":
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required when STORAGE_BACKEND=mongo")
		}
	case "postgres":
		if c.DBDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "file":
		if c.FileEvents == "" || c.FileGoals == "" || c.FileTasks == "" {
			return errors.New("File storage requires EVENTS_FILE, GOALS_FILE and TASKS_FILE to be set")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: mongo, postgres, file")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
