package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seanpor/loggrep/pkg/timestamp"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	File       string
	Output     string
	SampleSize int
	ConfigPath string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect which timestamp formats a log uses",
		Long: `Sample a log file (or stdin) and report which of the known timestamp
formats match, with what confidence.

Exit codes:
  0 - At least one format detected
  1 - No known format detected
  2 - File or runtime error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "Log file to sample (default: stdin)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVar(&opts.SampleSize, "lines", 100, "Number of lines to sample")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Config file with custom timestamp formats (default: $LOGGREP_CONFIG)")

	return cmd
}

func runDetect(cmd *cobra.Command, opts *DetectOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd, opts.File)
	if err != nil {
		return err
	}
	defer closeInput()

	lines, err := sampleLines(in, opts.SampleSize)
	if err != nil {
		return err
	}

	rec := timestamp.New(timestamp.WithFormats(cfg.TimestampFormats()))
	result := rec.DetectFormats(lines)

	w := cmd.OutOrStdout()
	switch opts.Output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	case "text":
		formatDetectionResult(w, result)
	default:
		return fmt.Errorf("invalid --output %q: must be text or json", opts.Output)
	}

	if !result.HasMatch() {
		ExitCode = 1
	}
	return nil
}

// sampleLines reads up to n non-empty, non-comment lines.
func sampleLines(r io.Reader, n int) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	for scanner.Scan() && len(lines) < n {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return lines, nil
}

func formatDetectionResult(w io.Writer, result *timestamp.DetectionResult) {
	fmt.Fprintf(w, "Sampled %d line(s), %d with detected timestamps\n\n",
		result.SampledLines, result.ParsedLines)

	if !result.HasMatch() {
		fmt.Fprintln(w, "No known timestamp format detected")
		return
	}

	for _, m := range result.Matches {
		fmt.Fprintf(w, "%-20s %5.1f%%  (%d line(s))\n",
			m.Format.Name, m.Confidence*100, m.MatchCount)
		fmt.Fprintf(w, "  sample: %s\n", m.SampleLine)
		fmt.Fprintf(w, "  parsed: %s\n", m.ParsedTime.Format("2006-01-02 15:04:05.999999"))
	}
}
