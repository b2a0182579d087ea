// Package logger fornece logging estruturado sobre zap.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger embrulha o zap.SugaredLogger usado em todo o serviço.
type Logger struct {
	*zap.SugaredLogger
}

// Config define nível e formato da saída.
type Config struct {
	Level       string // debug, info, warn, error
	Development bool   // saída legível para desenvolvimento
}

// New cria um Logger a partir da configuração.
func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	z, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{z.Sugar()}, nil
}

// Nop descarta tudo. Usado em testes.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// With adiciona pares chave/valor.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{l.SugaredLogger.With(keysAndValues...)}
}

// WithComponent marca as entradas com o nome do componente.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.SugaredLogger.With("component", name)}
}
