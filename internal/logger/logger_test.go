package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := Config{
		Level:  "info",
		Format: "text",
	}
	logger := New(cfg)
	if logger == nil {
		t.Error("Expected logger to not be nil")
	}

	cfg.Format = "json"
	logger = New(cfg)
	if logger == nil {
		t.Error("Expected logger to not be nil")
	}

	// Invalid level falls back to info
	cfg.Level = "invalid"
	logger = New(cfg)
	if logger == nil {
		t.Error("Expected logger to not be nil")
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf, Level: "info", Format: "json"})

	logger.WithComponent("store").Info("Album already exists", "album", "OK Computer")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}
	if record["component"] != "store" {
		t.Errorf("Expected component 'store', got %v", record["component"])
	}
	if record["album"] != "OK Computer" {
		t.Errorf("Expected album 'OK Computer', got %v", record["album"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf, Level: "warn", Format: "text"})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info record to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("Expected warn record, got %q", out)
	}
}

func TestWithAlbum(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf, Format: "text"})

	logger.WithAlbum("Kid A", "Radiohead").Info("linked")

	out := buf.String()
	if !strings.Contains(out, "album=\"Kid A\"") || !strings.Contains(out, "artist=Radiohead") {
		t.Errorf("Expected album attributes in %q", out)
	}
}

func TestWithImport(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf, Format: "text"})

	logger.WithImport("run-1", "seed.yaml").Info("loaded")

	if !strings.Contains(buf.String(), "import_id=run-1") {
		t.Errorf("Expected import_id attribute in %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger == nil {
		t.Fatal("Expected discard logger to not be nil")
	}
	logger.Error("dropped")
}

func TestLogLevels(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error"}

	for _, level := range levels {
		cfg := Config{
			Level:  level,
			Format: "text",
		}
		logger := New(cfg)
		if logger == nil {
			t.Errorf("Expected logger to not be nil for level %s", level)
		}
	}
}
