// Package timestamp provides timestamp detection and parsing for log lines.
package timestamp

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the bound on the detect/parse memoization caches.
// Logs repeat near-identical lines in bursts, so even a small cache has a
// high hit rate.
const DefaultCacheSize = 4096

type detectResult struct {
	sub string
	ok  bool
}

type parseResult struct {
	t  time.Time
	ok bool
}

// Recognizer detects and parses timestamps using an ordered format table.
// Detection and parsing results are memoized in bounded LRU caches;
// correctness does not depend on the caches.
type Recognizer struct {
	formats []*Format
	year    int

	detectCache *lru.Cache[string, detectResult]
	parseCache  *lru.Cache[string, parseResult]
}

// Option configures the Recognizer.
type Option func(*Recognizer)

// WithFormats replaces the built-in format table.
func WithFormats(formats []*Format) Option {
	return func(r *Recognizer) {
		if len(formats) > 0 {
			r.formats = formats
		}
	}
}

// WithDefaultYear sets the year substituted into year-less formats
// (syslog, logcat). Defaults to the current year.
func WithDefaultYear(year int) Option {
	return func(r *Recognizer) {
		r.year = year
	}
}

// New creates a Recognizer with the built-in formats.
func New(opts ...Option) *Recognizer {
	r := &Recognizer{
		formats: BuiltinFormats(),
		year:    time.Now().Year(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.detectCache, _ = lru.New[string, detectResult](DefaultCacheSize)
	r.parseCache, _ = lru.New[string, parseResult](DefaultCacheSize)
	return r
}

// Formats returns the recognizer's format table in priority order.
func (r *Recognizer) Formats() []*Format {
	return r.formats
}

// Detect searches the line against each format in priority order and
// returns the first capturing-group match. Absence of a timestamp is not
// an error; the second return value reports whether one was found.
func (r *Recognizer) Detect(line string) (string, bool) {
	if res, hit := r.detectCache.Get(line); hit {
		return res.sub, res.ok
	}

	var res detectResult
	for _, f := range r.formats {
		matches := f.Pattern.FindStringSubmatch(line)
		if len(matches) < 2 {
			continue
		}
		res = detectResult{sub: matches[1], ok: true}
		break
	}

	r.detectCache.Add(line, res)
	return res.sub, res.ok
}

// Parse converts a detected timestamp substring into a naive instant.
// Every format's fast-path layouts are tried in priority order (not only
// the format that detected the substring); the first success wins. If no
// fast path succeeds, a general flexible parser is used as fallback.
// Timezone offsets are dropped, not converted: the wall-clock fields as
// written become the instant. Any failure yields ok=false, never an error.
func (r *Recognizer) Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if res, hit := r.parseCache.Get(s); hit {
		return res.t, res.ok
	}

	t, ok := r.parseFast(s)
	if !ok {
		t, ok = r.parseFlexible(s)
	}

	r.parseCache.Add(s, parseResult{t: t, ok: ok})
	return t, ok
}

func (r *Recognizer) parseFast(s string) (time.Time, bool) {
	for _, f := range r.formats {
		for _, layout := range f.Layouts {
			t, err := time.Parse(layout, s)
			if err != nil {
				continue
			}
			if f.YearLess && t.Year() == 0 {
				t = time.Date(r.year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
			}
			return naive(t), true
		}
	}
	return time.Time{}, false
}

// parseFlexible handles the long tail of human-oriented absolute formats.
func (r *Recognizer) parseFlexible(s string) (t time.Time, ok bool) {
	// dateparse panics on a handful of malformed inputs; a parse failure
	// must degrade to a miss.
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()

	parsed, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return naive(parsed), true
}

// naive discards the offset, keeping the wall-clock fields as written.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
