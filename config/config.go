package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Session  SessionConfig
}

type DatabaseConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type ServerConfig struct {
	Addr        string
	MetricsPort string
	TemplateDir string
	StaticDir   string
	BlogTitle   string
}

type SessionConfig struct {
	CookieName    string
	CookieSecret  string
	ExpireMinutes int
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the variables directly
	_ = godotenv.Load()

	expire, err := strconv.Atoi(getEnv("SESSION_EXPIRE_MINUTES", "43200"))
	if err != nil {
		expire = 43200
	}

	return &Config{
		Database: DatabaseConfig{
			DBHost: getEnv("DB_HOST", "127.0.0.1"),
			DBPort: getEnv("DB_PORT", "27017"),
			DBName: getEnv("DB_NAME", "jj_blog"),
		},
		Server: ServerConfig{
			Addr:        getEnv("BLOG_ADDR", ":8080"),
			MetricsPort: getEnv("METRICS_PORT", "2112"),
			TemplateDir: getEnv("TEMPLATE_DIR", "templates"),
			StaticDir:   getEnv("STATIC_DIR", "static"),
			BlogTitle:   getEnv("BLOG_TITLE", "Jerry Blog"),
		},
		Session: SessionConfig{
			CookieName:    getEnv("SESSION_COOKIE_NAME", "blog_user"),
			CookieSecret:  getEnv("COOKIE_SECRET", ""),
			ExpireMinutes: expire,
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
