package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWidth_Nil(t *testing.T) {
	if got := Width(nil); got != DefaultWidth {
		t.Errorf("Width(nil) = %d, want %d", got, DefaultWidth)
	}
}

func TestWidth_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := Width(f); got != DefaultWidth {
		t.Errorf("Width(file) = %d, want %d", got, DefaultWidth)
	}
	if IsTerminal(f) {
		t.Error("IsTerminal(file) = true, want false")
	}
}
