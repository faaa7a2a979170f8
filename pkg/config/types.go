// Package config provides optional configuration loading for loggrep.
package config

import (
	"regexp"

	"github.com/seanpor/loggrep/pkg/timestamp"
)

// Config is the root configuration structure loaded from YAML.
// Everything in it is optional; loggrep runs without a config file.
type Config struct {
	// Formats are user-defined timestamp formats, tried before the
	// built-in table.
	Formats []FormatConfig `yaml:"formats,omitempty"`

	// Color is the default color policy (always|never|auto) used when
	// --color is not given on the command line.
	Color string `yaml:"color,omitempty"`
}

// FormatConfig defines a user timestamp format.
type FormatConfig struct {
	// Name identifies the format in detect/formats output.
	Name string `yaml:"name"`

	// Pattern is a regex with exactly one capture group isolating the
	// timestamp substring.
	Pattern string `yaml:"pattern"`

	// Layouts are Go time layouts tried as the fast parse path. May be
	// empty, in which case the flexible fallback parser handles the
	// captured substring.
	Layouts []string `yaml:"layouts,omitempty"`

	// YearLess marks formats whose layouts carry no year.
	YearLess bool `yaml:"year_less,omitempty"`

	// Examples are sample timestamps shown by the formats command.
	Examples []string `yaml:"examples,omitempty"`

	// compiledPattern is the pre-compiled regex (populated during validation).
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled regex pattern.
func (f *FormatConfig) CompiledPattern() *regexp.Regexp {
	return f.compiledPattern
}

// TimestampFormats returns the user formats followed by the built-in
// table, in priority order.
func (c *Config) TimestampFormats() []*timestamp.Format {
	builtin := timestamp.BuiltinFormats()
	if len(c.Formats) == 0 {
		return builtin
	}

	formats := make([]*timestamp.Format, 0, len(c.Formats)+len(builtin))
	for i := range c.Formats {
		f := &c.Formats[i]
		formats = append(formats, &timestamp.Format{
			Name:       f.Name,
			Pattern:    f.compiledPattern,
			PatternStr: f.Pattern,
			Layouts:    f.Layouts,
			YearLess:   f.YearLess,
			Examples:   f.Examples,
		})
	}
	return append(formats, builtin...)
}
