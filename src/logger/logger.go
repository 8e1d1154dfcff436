package logger

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otellogrus"
)

// Setup configures the standard logrus logger. Warnings and above are also recorded
// as events on the active span.
func Setup(level string, json bool) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Setup: %w", err)
	}

	log.SetLevel(lvl)

	if json {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	log.AddHook(otellogrus.NewHook(otellogrus.WithLevels(
		log.PanicLevel,
		log.FatalLevel,
		log.ErrorLevel,
		log.WarnLevel,
	)))

	return nil
}

// SetOutput redirects the standard logger, e.g. to keep stdout free for command output.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}
