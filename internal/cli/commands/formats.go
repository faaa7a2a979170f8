package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seanpor/loggrep/pkg/timestamp"
)

// FormatsOptions holds command-line options for the formats command.
type FormatsOptions struct {
	Output     string
	ConfigPath string
}

// NewFormatsCommand creates the formats command.
func NewFormatsCommand() *cobra.Command {
	opts := &FormatsOptions{}

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the known timestamp formats",
		Long: `List the timestamp formats loggrep recognizes, in priority order.
User formats from the config file appear first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormats(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Config file with custom timestamp formats (default: $LOGGREP_CONFIG)")

	return cmd
}

func runFormats(cmd *cobra.Command, opts *FormatsOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	formats := cfg.TimestampFormats()
	w := cmd.OutOrStdout()

	switch opts.Output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(formats); err != nil {
			return fmt.Errorf("encoding formats: %w", err)
		}
	case "text":
		formatFormats(w, formats)
	default:
		return fmt.Errorf("invalid --output %q: must be text or json", opts.Output)
	}

	return nil
}

func formatFormats(w io.Writer, formats []*timestamp.Format) {
	for i, f := range formats {
		fmt.Fprintf(w, "%2d. %s\n", i+1, f.Name)
		fmt.Fprintf(w, "    pattern:  %s\n", f.PatternStr)
		if len(f.Examples) > 0 {
			fmt.Fprintf(w, "    examples: %s\n", strings.Join(f.Examples, ", "))
		}
	}
}
