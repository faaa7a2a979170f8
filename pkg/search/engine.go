package search

import (
	"context"
	"io"
	"regexp"
	"time"

	"github.com/seanpor/loggrep/pkg/input"
	"github.com/seanpor/loggrep/pkg/timestamp"
)

// noTimestampThreshold is the number of consecutive timestamp-less lines
// after which gating is disabled for the rest of the run, provided no
// timestamp was ever seen. Logs with no recognizable timestamp format
// stay fully searchable instead of being silently dropped.
const noTimestampThreshold = 3

// Engine is a compiled search session. It is immutable after construction
// and may start any number of Streams; each Stream holds the per-run
// mutable state.
type Engine struct {
	pattern *regexp.Regexp
	rec     *timestamp.Recognizer
	hl      *highlighter
	invert  bool
	before  int
	after   int
	startup *time.Time
}

// Option configures the Engine.
type Option func(*Engine)

// WithRecognizer replaces the engine's timestamp recognizer.
func WithRecognizer(r *timestamp.Recognizer) Option {
	return func(e *Engine) {
		e.rec = r
	}
}

// New compiles a search engine from the config.
// Fails with ErrInvalidPattern if the combined pattern does not compile.
func New(cfg Config, opts ...Option) (*Engine, error) {
	re, err := compilePattern(cfg.Patterns, cfg.IgnoreCase)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		pattern: re,
		invert:  cfg.InvertMatch,
		before:  max(cfg.BeforeContext, cfg.Context),
		after:   max(cfg.AfterContext, cfg.Context),
		hl:      newHighlighter(cfg.Color),
	}
	if cfg.StartupTime != nil {
		t := *cfg.StartupTime
		e.startup = &t
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.rec == nil {
		var recOpts []timestamp.Option
		if len(cfg.Formats) > 0 {
			recOpts = append(recOpts, timestamp.WithFormats(cfg.Formats))
		}
		e.rec = timestamp.New(recOpts...)
	}

	return e, nil
}

// Search begins a run over src. The returned Stream is single-use and
// never restarts; start a fresh Stream (over a fresh source) per run.
func (e *Engine) Search(src input.LineSource) *Stream {
	s := &Stream{
		engine:  e,
		src:     src,
		inRange: e.startup == nil,
	}
	if e.startup != nil {
		t := *e.startup
		s.startup = &t
	}
	if e.before > 0 {
		s.beforeBuf = make([]string, 0, e.before)
	}
	return s
}

// Stream is a lazy sequence of output lines over one input source.
// It pulls one input line at a time and never reads ahead, so live input
// and unbounded streams are supported; memory is bounded by the context
// window, not by input length.
type Stream struct {
	engine *Engine
	src    input.LineSource

	startup   *time.Time // cleared when gating is disabled mid-run
	inRange   bool
	beforeBuf []string // bounded FIFO of not-yet-emitted candidate context lines
	afterLeft int
	noTSRun   int
	sawTS     bool

	queue []string
	done  bool
	err   error
}

// Next returns the next output line.
// Returns io.EOF when the input is exhausted.
func (s *Stream) Next(ctx context.Context) (string, error) {
	for {
		if len(s.queue) > 0 {
			line := s.queue[0]
			s.queue = s.queue[1:]
			return line, nil
		}
		if s.done {
			if s.err != nil {
				return "", s.err
			}
			return "", io.EOF
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		line, err := s.src.Next(ctx)
		if err == io.EOF {
			s.done = true
			continue
		}
		if err != nil {
			s.done = true
			s.err = err
			continue
		}
		s.process(line)
	}
}

// process runs the per-line algorithm, appending output lines to the queue.
func (s *Stream) process(line string) {
	e := s.engine

	// Time gating. Out-of-range lines are dropped entirely and never
	// enter the before-context buffer.
	if s.startup != nil {
		if sub, found := e.rec.Detect(line); found {
			s.sawTS = true
			s.noTSRun = 0
			if ts, ok := e.rec.Parse(sub); ok {
				s.inRange = !ts.Before(*s.startup)
			}
			// On a parse failure in-range carries over from the
			// previous line.
		} else {
			s.noTSRun++
			if s.noTSRun >= noTimestampThreshold && !s.sawTS {
				s.startup = nil
				s.inRange = true
			}
		}
		if !s.inRange {
			return
		}
	}

	// Pattern evaluation.
	loc := e.pattern.FindStringIndex(line)
	isMatch := (loc != nil) != e.invert

	// Pending after-context from an earlier match is emitted before the
	// line is considered as a fresh match.
	emitted := false
	if s.afterLeft > 0 {
		s.queue = append(s.queue, line)
		s.afterLeft--
		emitted = true
	}

	if isMatch {
		if e.before > 0 {
			s.queue = append(s.queue, s.beforeBuf...)
			s.beforeBuf = s.beforeBuf[:0]
		}
		out := line
		if loc != nil {
			out = e.hl.apply(line, loc)
		}
		s.queue = append(s.queue, out)
		if e.after > 0 {
			// Overwrites, never adds to, a still-pending count.
			s.afterLeft = e.after
		}
		emitted = true
	}

	// Only lines not already emitted remain candidates for the
	// before-context of a later match.
	if e.before > 0 && !emitted {
		if len(s.beforeBuf) == e.before {
			copy(s.beforeBuf, s.beforeBuf[1:])
			s.beforeBuf = s.beforeBuf[:e.before-1]
		}
		s.beforeBuf = append(s.beforeBuf, line)
	}
}
