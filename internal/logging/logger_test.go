package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithOutputLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{name: "empty defaults to info", level: "", want: logrus.InfoLevel},
		{name: "debug", level: "debug", want: logrus.DebugLevel},
		{name: "padded warn", level: " warn ", want: logrus.WarnLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := NewWithOutput(&bytes.Buffer{}, tc.level, "text")
			if err != nil {
				t.Fatalf("new logger: %v", err)
			}
			if logger.GetLevel() != tc.want {
				t.Fatalf("expected level %v, got %v", tc.want, logger.GetLevel())
			}
		})
	}
}

func TestNewWithOutputRejectsInvalidSettings(t *testing.T) {
	if _, err := NewWithOutput(&bytes.Buffer{}, "loud", "text"); err == nil {
		t.Fatal("expected invalid level error")
	}
	if _, err := NewWithOutput(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Fatal("expected invalid format error")
	}
}

func TestNewWithOutputJSONFormat(t *testing.T) {
	output := &bytes.Buffer{}
	logger, err := NewWithOutput(output, "info", "json")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.WithField("user_id", 7).Info("overview built")

	payload := map[string]any{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(output.String())), &payload); err != nil {
		t.Fatalf("decode json log line: %v", err)
	}
	if payload["msg"] != "overview built" {
		t.Fatalf("expected msg field, got %#v", payload)
	}
	if payload["user_id"] != float64(7) {
		t.Fatalf("expected user_id field, got %#v", payload["user_id"])
	}
}

func TestAttachHooksDisabledAddsNothing(t *testing.T) {
	logger, err := NewWithOutput(&bytes.Buffer{}, "info", "text")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if err := AttachHooks(logger, HookConfig{}); err != nil {
		t.Fatalf("attach hooks: %v", err)
	}
	if len(logger.Hooks[logrus.InfoLevel]) != 0 {
		t.Fatalf("expected no hooks, got %d", len(logger.Hooks[logrus.InfoLevel]))
	}
}

func TestAttachHooksRequiresURLs(t *testing.T) {
	logger, err := NewWithOutput(&bytes.Buffer{}, "info", "text")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if err := AttachHooks(logger, HookConfig{ElkEnable: true}); err != ErrElasticURLRequired {
		t.Fatalf("expected ErrElasticURLRequired, got %v", err)
	}
	if err := AttachHooks(logger, HookConfig{LogstashEnable: true}); err != ErrLogstashURLRequired {
		t.Fatalf("expected ErrLogstashURLRequired, got %v", err)
	}
}

func TestAttachHooksAddsLogstashHook(t *testing.T) {
	logger, err := NewWithOutput(&bytes.Buffer{}, "info", "text")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if err := AttachHooks(logger, HookConfig{LogstashEnable: true, LogstashURL: "127.0.0.1:5959"}); err != nil {
		t.Fatalf("attach logstash hook: %v", err)
	}
	if len(logger.Hooks[logrus.InfoLevel]) != 1 {
		t.Fatalf("expected one hook on info level, got %d", len(logger.Hooks[logrus.InfoLevel]))
	}
}
