// Package logging configures the process-wide logrus logger.
package logging

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/config"
)

// New builds the service logger: colored text at debug level in
// development, JSON with a rotating file sink otherwise.
func New() *logrus.Logger {
	log := logrus.New()

	if config.Development() {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		return log
	}

	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   config.LogFile(),
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
	})
	if err != nil {
		log.Warn("unable to create rotating log file: ", err)
		return log
	}
	log.AddHook(hook)

	return log
}
