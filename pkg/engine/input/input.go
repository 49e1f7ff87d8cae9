// Package input reads player answers line by line.
package input

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads trimmed lines of text from an input stream
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r for line-by-line reading
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without surrounding whitespace.
// A final line that is not newline terminated is still returned; io.EOF is only
// reported once nothing is left.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
