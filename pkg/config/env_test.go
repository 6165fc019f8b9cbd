package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("FOO", "")
	if got := GetEnv("FOO", "bar"); got != "bar" {
		t.Fatalf("expected bar, got %s", got)
	}
	t.Setenv("FOO", "baz")
	if got := GetEnv("FOO", "bar"); got != "baz" {
		t.Fatalf("expected baz, got %s", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("NUM", "")
	if got := GetEnvInt("NUM", 42); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	t.Setenv("NUM", "100")
	if got := GetEnvInt("NUM", 42); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	t.Setenv("NUM", "notint")
	if got := GetEnvInt("NUM", 7); got != 7 {
		t.Fatalf("expected 7 on parse error, got %d", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG", "")
	if got := GetEnvBool("FLAG", true); got != true {
		t.Fatalf("expected true default, got %v", got)
	}
	t.Setenv("FLAG", "false")
	if got := GetEnvBool("FLAG", true); got != false {
		t.Fatalf("expected false, got %v", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("WAIT", "")
	if got := GetEnvDuration("WAIT", 5*time.Second); got != 5*time.Second {
		t.Fatalf("expected default 5s, got %v", got)
	}
	t.Setenv("WAIT", "250ms")
	if got := GetEnvDuration("WAIT", 5*time.Second); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", got)
	}
	t.Setenv("WAIT", "junk")
	if got := GetEnvDuration("WAIT", time.Minute); got != time.Minute {
		t.Fatalf("expected default on parse error, got %v", got)
	}
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	if got := GetLogLevel(); got != logrus.DebugLevel {
		t.Fatalf("expected debug, got %v", got)
	}
	t.Setenv("LOG_LEVEL", "")
	if got := GetLogLevel(); got != logrus.InfoLevel {
		t.Fatalf("expected info default, got %v", got)
	}
}
