package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KromaEnergia/api-fichas/internal/config"
)

// ConnectDataBase abre o pool do postgres com o nível de log do GORM vindo da config.
func ConnectDataBase(cfg *config.Config) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(NivelLog(cfg.DB.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("conectando ao banco: %w", err)
	}

	return database, nil
}

// NivelLog traduz o nome do nível (silent, error, warn, info) para o GORM.
func NivelLog(nome string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(nome)) {
	case "silent":
		return logger.Silent
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return logger.Error
	}
}
