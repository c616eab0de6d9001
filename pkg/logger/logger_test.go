package logger_test

import (
	"testing"

	"company-ai/pkg/logger"

	"github.com/m-mizutani/gt"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{level: "debug", want: zapcore.DebugLevel},
		{level: "warn", want: zapcore.WarnLevel},
		{level: "bogus", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := logger.New(tt.level)
			gt.NoError(t, err).Required()
			gt.Bool(t, l.Core().Enabled(tt.want)).True()
			if tt.want > zapcore.DebugLevel {
				gt.Bool(t, l.Core().Enabled(tt.want-1)).False()
			}
		})
	}
}

func TestGetInitializesDefault(t *testing.T) {
	gt.Value(t, logger.Get()).NotNil()
}
