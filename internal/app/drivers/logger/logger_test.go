package logger

import (
	"testing"
	"therapyconnect-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestNewLogrusLogger(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "warn"}}
	internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

	logger := NewLogrusLogger(driverConfig, internalConfig)

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
