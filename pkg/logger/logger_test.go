package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(999), "UNKNOWN"}, // Invalid level
	}

	for _, test := range tests {
		if result := test.level.String(); result != test.expected {
			t.Errorf("Level.String() = %v, expected %v", result, test.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"WARN", WarnLevel},
		{"Error", ErrorLevel},
		{"bogus", InfoLevel}, // Unknown defaults to info
	}

	for _, test := range tests {
		if result := ParseLevel(test.input); result != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestLoggerInitialization(t *testing.T) {
	config := Config{
		Level:     InfoLevel,
		UseColor:  false,
		JSON:      false,
		Component: "test",
	}

	err := Initialize(config)
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	if defaultLogger == nil {
		t.Fatal("Initialize() did not set defaultLogger")
	}

	if defaultLogger.config.Component != "test" {
		t.Errorf("Initialize() did not set config correctly, got component: %s", defaultLogger.config.Component)
	}
}

func TestLoggerPrettyFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{
			Level:     InfoLevel,
			UseColor:  false,
			JSON:      false,
			Component: "test",
		},
		logger: log.New(&buf, "", 0),
	}

	l.Log(InfoLevel, "hello", String("key", "value"))

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("expected level in output: %s", out)
	}
	if !strings.Contains(out, "test:") {
		t.Errorf("expected component in output: %s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("expected message in output: %s", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("expected field in output: %s", out)
	}
}

func TestLoggerJSONFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{
			Level:     InfoLevel,
			JSON:      true,
			Component: "test",
		},
		logger: log.New(&buf, "", 0),
	}

	l.Log(WarnLevel, "careful", Int("count", 3))

	var entry LogEntry
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v\n%s", err, buf.String())
	}
	if entry.Level != "WARN" {
		t.Errorf("entry.Level = %q, expected WARN", entry.Level)
	}
	if entry.Message != "careful" {
		t.Errorf("entry.Message = %q, expected careful", entry.Message)
	}
	if entry.Fields["count"] != float64(3) {
		t.Errorf("entry.Fields[count] = %v, expected 3", entry.Fields["count"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{Level: WarnLevel},
		logger: log.New(&buf, "", 0),
	}

	l.Log(InfoLevel, "suppressed")
	if buf.Len() != 0 {
		t.Errorf("expected info message below warn threshold to be suppressed: %s", buf.String())
	}

	l.Log(ErrorLevel, "emitted")
	if !strings.Contains(buf.String(), "emitted") {
		t.Errorf("expected error message to pass threshold: %s", buf.String())
	}
}
