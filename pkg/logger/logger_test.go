package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestSetMode(t *testing.T) {
	tests := []struct {
		mode string
		want zap.AtomicLevel
	}{
		{"debug", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"release", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"", zap.NewAtomicLevelAt(zap.InfoLevel)},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			SetMode(tt.mode)
			if got := Level(); got != tt.want.Level() {
				t.Errorf("Level() = %v, want %v", got, tt.want.Level())
			}
		})
	}
}
