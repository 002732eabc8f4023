package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      App      `yaml:"app"`
	Database Database `yaml:"database"`
	Redis    Redis    `yaml:"redis"`
	Auth     Auth     `yaml:"auth"`
	SMTP     SMTP     `yaml:"smtp"`
	Allows   Allows   `yaml:"allows"`
}

type App struct {
	Name        string `yaml:"name"`
	Port        string `yaml:"port"`
	Host        string `yaml:"host"`
	Version     string `yaml:"version"`
	BaseURL     string `yaml:"base_url"`
	FrontendURL string `yaml:"frontend_url"`
}

type Database struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	Name string `yaml:"name"`
}

type Redis struct {
	Addr string `yaml:"addr"`
	Pass string `yaml:"pass"`
	DB   int    `yaml:"db"`
}

// Auth carries the session-signing secret and the password pepper.
// Both are injected into the services at startup, never read from the
// environment inside domain code.
type Auth struct {
	Secret string `yaml:"secret"`
	Pepper string `yaml:"pepper"`
}

type SMTP struct {
	Host string `yaml:"host"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	From string `yaml:"from"`
}

type Allows struct {
	Methods []string `yaml:"methods"`
	Origins []string `yaml:"origins"`
	Headers []string `yaml:"headers"`
}

func InitConfig() *Config {
	var configs Config
	file_name, _ := filepath.Abs("./config.yaml")
	yaml_file, _ := os.ReadFile(file_name)
	yaml.Unmarshal(yaml_file, &configs)

	// Override with environment variables if they exist (for Docker)
	if dbHost := os.Getenv("DB_HOST"); dbHost != "" {
		configs.Database.Host = dbHost
	}
	if dbPort := os.Getenv("DB_PORT"); dbPort != "" {
		configs.Database.Port = dbPort
	}
	if dbUser := os.Getenv("DB_USER"); dbUser != "" {
		configs.Database.User = dbUser
	}
	if dbPassword := os.Getenv("DB_PASSWORD"); dbPassword != "" {
		configs.Database.Pass = dbPassword
	}
	if dbName := os.Getenv("DB_NAME"); dbName != "" {
		configs.Database.Name = dbName
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		configs.Redis.Addr = redisAddr
	}
	if redisPass := os.Getenv("REDIS_PASSWORD"); redisPass != "" {
		configs.Redis.Pass = redisPass
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		configs.Auth.Secret = secret
	}
	if pepper := os.Getenv("PASSWORD_PEPPER"); pepper != "" {
		configs.Auth.Pepper = pepper
	}

	if smtpHost := os.Getenv("SMTP_HOST"); smtpHost != "" {
		configs.SMTP.Host = smtpHost
	}
	if smtpUser := os.Getenv("SMTP_USER"); smtpUser != "" {
		configs.SMTP.User = smtpUser
	}
	if smtpPass := os.Getenv("SMTP_PASS"); smtpPass != "" {
		configs.SMTP.Pass = smtpPass
	}
	if smtpFrom := os.Getenv("FROM_EMAIL"); smtpFrom != "" {
		configs.SMTP.From = smtpFrom
	}

	// Override app configuration with environment variables
	if appHost := os.Getenv("APP_HOST"); appHost != "" {
		configs.App.Host = appHost
	}
	if appPort := os.Getenv("APP_PORT"); appPort != "" {
		configs.App.Port = appPort
	}
	if appName := os.Getenv("APP_NAME"); appName != "" {
		configs.App.Name = appName
	}
	if baseURL := os.Getenv("APP_URL"); baseURL != "" {
		configs.App.BaseURL = baseURL
	}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		configs.App.FrontendURL = frontendURL
	}

	return &configs
}
