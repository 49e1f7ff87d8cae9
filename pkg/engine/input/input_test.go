package input

import (
	"io"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	r := NewLineReader(strings.NewReader("  m \r\n12\nlast"))

	for _, want := range []string{"m", "12", "last"} {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine: %v", err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}

	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine() error = %v at end of input, want io.EOF", err)
	}
}
