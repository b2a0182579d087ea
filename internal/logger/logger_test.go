package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want zapcore.Level
	}{
		{"produção debug", Config{Level: "debug"}, zapcore.DebugLevel},
		{"desenvolvimento warn", Config{Level: "warn", Development: true}, zapcore.WarnLevel},
		{"nível inválido cai para info", Config{Level: "barulhento"}, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Level())
		})
	}
}

func TestWithComponent(t *testing.T) {
	l := Nop().WithComponent("ficha").With("ficha_id", "x")
	assert.NotNil(t, l.SugaredLogger)
	assert.NotPanics(t, func() { l.Infow("ok") })
}
