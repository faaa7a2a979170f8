// Package input provides line sources for the search engine.
package input

import (
	"bufio"
	"context"
	"io"
	"strings"
	"unicode/utf8"
)

// LineSource provides an iterator over raw log lines.
// Implementations must be safe for sequential access (not concurrent).
type LineSource interface {
	// Next returns the next line, including its original newline
	// (absent on a final unterminated line).
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (string, error)
}

// ReaderSource implements LineSource over an io.Reader. Invalid UTF-8 is
// substituted with U+FFFD so consumers never see a decoding failure.
type ReaderSource struct {
	r *bufio.Reader
}

// NewReaderSource creates a LineSource reading from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

// Next returns the next line from the reader.
func (s *ReaderSource) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	line, err := s.r.ReadString('\n')
	if len(line) > 0 {
		// A partial final line is returned now; the error surfaces on
		// the following call.
		if !utf8.ValidString(line) {
			line = strings.ToValidUTF8(line, "�")
		}
		return line, nil
	}
	if err == nil {
		err = io.EOF
	}
	return "", err
}

// SliceSource implements LineSource over an in-memory slice of lines.
type SliceSource struct {
	lines []string
	index int
}

// NewSliceSource creates a LineSource over the given lines.
func NewSliceSource(lines ...string) *SliceSource {
	return &SliceSource{lines: lines}
}

// Next returns the next line from the slice.
func (s *SliceSource) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if s.index >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.index]
	s.index++
	return line, nil
}
