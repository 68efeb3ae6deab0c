package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	log := New("debug", "json")
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter, got %T", log.Formatter)
	}
}

func TestNewDefaults(t *testing.T) {
	log := New("", "")
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %v", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("Expected text formatter, got %T", log.Formatter)
	}
}

func TestInitReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	Init()
	if Log.GetLevel() != logrus.WarnLevel {
		t.Errorf("Expected warn level, got %v", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter, got %T", Log.Formatter)
	}
}
