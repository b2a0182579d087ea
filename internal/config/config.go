package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Port int `envconfig:"APP_PORT" default:"8080"`
	}

	DB struct {
		Host           string `envconfig:"DB_HOST" default:"localhost"`
		Port           int    `envconfig:"DB_PORT" default:"5432"`
		User           string `envconfig:"DB_USER" default:"postgres"`
		Password       string `envconfig:"DB_PASSWORD" default:""`
		Name           string `envconfig:"DB_NAME" default:"fichas"`
		SSLModeDisable bool   `envconfig:"DB_SSL_MODE_DISABLE" default:"false"`
		LogLevel       string `envconfig:"DB_LOG_LEVEL" default:"error"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
		TTL       time.Duration `envconfig:"JWT_TTL" default:"12h"`
	}

	// Admin inicial criado no boot quando o e-mail estiver definido.
	Admin struct {
		Nome  string `envconfig:"ADMIN_SEED_NOME"`
		Email string `envconfig:"ADMIN_SEED_EMAIL"`
		Senha string `envconfig:"ADMIN_SEED_SENHA"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Webhook struct {
		URL     string        `envconfig:"FICHAS_WEBHOOK_URL"`
		Timeout time.Duration `envconfig:"FICHAS_WEBHOOK_TIMEOUT" default:"5s"`
	}

	Log struct {
		Level       string `envconfig:"LOG_LEVEL" default:"info"`
		Development bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
	}
}

// DSN monta a string de conexão no formato aceito pelo driver postgres.
func (c *Config) DSN() string {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port)
	if c.DB.SSLModeDisable {
		dsn += " sslmode=disable"
	}
	return dsn
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() (*Config, error) {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
