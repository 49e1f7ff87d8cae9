package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	log, err := New("")
	if err != nil {
		t.Fatalf("New(\"\"): %v", err)
	}
	log.Infow("ignored", "room", 1)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wumpus.log")
	log, err := New(path)
	if err != nil {
		t.Fatalf("New(%q): %v", path, err)
	}
	log.Infow("hazard moved", "hazard", "bats", "room", 7)
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hazard moved") {
		t.Errorf("log file = %q, want it to contain %q", data, "hazard moved")
	}
}
