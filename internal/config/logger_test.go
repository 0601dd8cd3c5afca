package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	})

	SetupLogger(&Config{IsProd: true, LogLevel: "debug"})
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	SetupLogger(&Config{LogLevel: "loud"})
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
