package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/dkusuma/manning/pkg/configuration"
)

// Setup builds the process logger from configuration. Production gets JSON
// output; everything else gets human-readable text with full timestamps. An
// unknown level falls back to info.
func Setup(conf *configuration.Configuration) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if conf.GoAppEnvironment == configuration.Production {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
