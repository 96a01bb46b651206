package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{name: "debug", level: "debug", wantDebug: true, wantInfo: true},
		{name: "warn", level: "warn"},
		{name: "empty falls back to info", level: "", wantInfo: true},
		{name: "unknown falls back to info", level: "chatty", wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.level, "test")

			log.Debug().Msg("d")
			if got := strings.Contains(buf.String(), `"message":"d"`); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			buf.Reset()

			log.Info().Msg("i")
			if got := strings.Contains(buf.String(), `"message":"i"`); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
		})
	}
}

func TestNew_Component(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "tui")
	log.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON line %q: %v", buf.String(), err)
	}
	if entry["component"] != "tui" {
		t.Errorf("component = %v", entry["component"])
	}
	if _, ok := entry["time"]; !ok {
		t.Errorf("missing timestamp")
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "calcvault.log")

	log, closer, err := File(path, "info", "tui")
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}
	log.Info().Msg("written")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(b), "written") {
		t.Errorf("log file content = %q", b)
	}
}
