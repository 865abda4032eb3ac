package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func Test_EntryLeveller(t *testing.T) {
	tests := []struct {
		name    string
		levels  map[string]zapcore.Level
		logger  string
		level   zapcore.Level
		written bool
	}{
		{
			name:    "exact logger match below level is dropped",
			levels:  map[string]zapcore.Level{"aws": zapcore.WarnLevel},
			logger:  "aws",
			level:   zapcore.InfoLevel,
			written: false,
		},
		{
			name:    "exact logger match at level is written",
			levels:  map[string]zapcore.Level{"aws": zapcore.WarnLevel},
			logger:  "aws",
			level:   zapcore.WarnLevel,
			written: true,
		},
		{
			name:    "parent logger level applies to children",
			levels:  map[string]zapcore.Level{"aws": zapcore.ErrorLevel},
			logger:  "aws.s3",
			level:   zapcore.InfoLevel,
			written: false,
		},
		{
			name:    "unconfigured logger falls through to the core",
			levels:  map[string]zapcore.Level{"aws": zapcore.ErrorLevel},
			logger:  "assets",
			level:   zapcore.InfoLevel,
			written: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			observed, logs := observer.New(zapcore.DebugLevel)
			log := zap.New(NewEntryLeveller(observed, tt.levels)).Named(tt.logger)

			switch tt.level {
			case zapcore.InfoLevel:
				log.Info("message")
			case zapcore.WarnLevel:
				log.Warn("message")
			}

			if tt.written {
				assert.Equal(1, logs.Len())
			} else {
				assert.Equal(0, logs.Len())
			}
		})
	}
}
