package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLoggerEmitsJSONRecords(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf)

	l.Info("listener started", slog.String("addr", ":8080"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("record is not a JSON line: %v (output %q)", err, buf.String())
	}
	if entry["msg"] != "listener started" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["addr"] != ":8080" {
		t.Fatalf("unexpected addr attribute: %v", entry["addr"])
	}
	if entry["level"] != "INFO" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
}

func TestLoggerSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf)

	l.Debug("noise")

	if buf.Len() != 0 {
		t.Fatalf("debug record should be suppressed, got %q", buf.String())
	}
}

func TestNewReturnsUsableLogger(t *testing.T) {
	if New() == nil {
		t.Fatal("expected logger instance")
	}
}
