package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/seanpor/loggrep/pkg/config"
	"github.com/seanpor/loggrep/pkg/input"
	"github.com/seanpor/loggrep/pkg/search"
	"github.com/seanpor/loggrep/pkg/timestamp"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// SearchOptions holds command-line options for the search (root) command.
type SearchOptions struct {
	File        string
	StartupTime string
	IgnoreCase  bool
	InvertMatch bool
	After       int
	Before      int
	Context     int
	Color       string
	ConfigPath  string
}

// NewSearchCommand creates the root search command.
func NewSearchCommand() *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "loggrep [flags] PATTERN [PATTERN...]",
		Short: "Search log files with timestamp awareness",
		Long: `Search log files with timestamp awareness - like grep, but for logs.

Multiple patterns are OR'd together. With --startup-time, only lines at or
after the given instant are searched; lines whose timestamps cannot be
parsed inherit the previous line's gating decision, and streams with no
recognizable timestamps at all are searched in full.

Exit codes:
  0 - Success
  1 - Invalid pattern
  2 - File, config, or runtime error

Examples:
  # Basic pattern search
  loggrep "ERROR" --file application.log

  # Search from stdin (like grep)
  cat application.log | loggrep "ERROR"

  # Only show matches at or after a specific time
  loggrep "ERROR" --file app.log --startup-time "2025-01-15 14:30:00"

  # Multiple patterns with context
  loggrep "ERROR" "WARN" --file app.log -C 3

  # Case-insensitive search with invert match
  loggrep -i -v "debug" --file app.log

  # Android logcat filtering
  adb logcat | loggrep "MyApp" --startup-time "$(date '+%m-%d %H:%M:%S')"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVar(&opts.File, "file", "", "Log file to search (default: stdin)")
	cmd.Flags().StringVar(&opts.StartupTime, "startup-time", "", "Only show matches at or after this time (e.g., '2025-10-04 12:00:00')")
	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "Ignore case in pattern matching")
	cmd.Flags().BoolVarP(&opts.InvertMatch, "invert-match", "v", false, "Show lines that do NOT match the pattern")
	cmd.Flags().IntVarP(&opts.After, "after-context", "A", 0, "Show NUM lines after each match")
	cmd.Flags().IntVarP(&opts.Before, "before-context", "B", 0, "Show NUM lines before each match")
	cmd.Flags().IntVarP(&opts.Context, "context", "C", 0, "Show NUM lines before and after each match")
	cmd.Flags().StringVar(&opts.Color, "color", "auto", "Control colored output (always|never|auto)")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Config file with custom timestamp formats (default: $LOGGREP_CONFIG)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string, opts *SearchOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	rec := timestamp.New(timestamp.WithFormats(cfg.TimestampFormats()))

	// The startup instant is resolved here, not in the engine: a
	// malformed value aborts before any scanning begins.
	var startup *time.Time
	if opts.StartupTime != "" {
		t, ok := rec.Parse(opts.StartupTime)
		if !ok {
			return fmt.Errorf("invalid --startup-time %q", opts.StartupTime)
		}
		startup = &t
	}

	colorMode := opts.Color
	if !cmd.Flags().Changed("color") && cfg.Color != "" {
		colorMode = cfg.Color
	}
	useColor, err := resolveColor(colorMode)
	if err != nil {
		return err
	}

	engine, err := search.New(search.Config{
		Patterns:      args,
		IgnoreCase:    opts.IgnoreCase,
		InvertMatch:   opts.InvertMatch,
		BeforeContext: opts.Before,
		AfterContext:  opts.After,
		Context:       opts.Context,
		Color:         useColor,
		StartupTime:   startup,
	}, search.WithRecognizer(rec))
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd, opts.File)
	if err != nil {
		return err
	}
	defer closeInput()

	stream := engine.Search(input.NewReaderSource(in))

	w := bufio.NewWriter(cmd.OutOrStdout())
	for {
		line, err := stream.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if _, err := w.WriteString(line); err != nil {
			if isBrokenPipe(err) {
				return nil
			}
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		if isBrokenPipe(err) {
			return nil
		}
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// loadConfig loads the config file from the flag, the environment, or
// falls back to defaults when neither is set.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.PathFromEnvironment()
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// resolveColor turns the color mode into a yes/no decision. Auto means
// stdout is a terminal and NO_COLOR is unset.
func resolveColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color %q: must be always, never, or auto", mode)
	}
}

// openInput opens the input file, or returns stdin when no file is given.
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// isBrokenPipe reports whether err is the result of the consumer going
// away (e.g. piping into head).
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
