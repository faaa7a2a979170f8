// Package search provides the streaming, timestamp-gated search engine.
package search

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/seanpor/loggrep/pkg/timestamp"
)

// ErrInvalidPattern is returned by New when the combined search pattern
// does not compile. It is the only error the engine surfaces; everything
// else degrades locally.
var ErrInvalidPattern = errors.New("invalid pattern")

// Config describes one search session. The zero value searches nothing;
// at least one pattern is required.
type Config struct {
	// Patterns are regex patterns, OR'd together. Each pattern becomes
	// its own parenthesized alternative so highlighting can recover the
	// overall matched span.
	Patterns []string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool

	// InvertMatch selects lines that do NOT match.
	InvertMatch bool

	// BeforeContext and AfterContext are grep-style context line counts.
	// Context overrides both via max.
	BeforeContext int
	AfterContext  int
	Context       int

	// Color enables highlighting of the matched span. Whether the
	// destination supports color is the caller's decision.
	Color bool

	// StartupTime gates lines chronologically: only lines at or after
	// this naive instant are searched. Nil disables gating.
	StartupTime *time.Time

	// Formats overrides the built-in timestamp format table.
	Formats []*timestamp.Format
}

func compilePattern(patterns []string, ignoreCase bool) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: at least one pattern is required", ErrInvalidPattern)
	}

	alts := make([]string, len(patterns))
	for i, p := range patterns {
		alts[i] = "(" + p + ")"
	}
	expr := strings.Join(alts, "|")
	if ignoreCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}
