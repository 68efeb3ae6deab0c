package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger of the command line tools.
var Log = logrus.New()

// Init configures Log from the environment. It must be called once at
// startup.
//
// LOG_LEVEL selects the level (default "info"), LOG_FORMAT=json switches to
// JSON output, anything else gives text with full timestamps.
func Init() {
	Log = New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// New builds a logger writing to stdout. An unknown level falls back to info.
func New(levelName, format string) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetOutput(os.Stdout)
	return log
}
