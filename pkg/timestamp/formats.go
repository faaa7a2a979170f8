package timestamp

import "regexp"

// Format represents a known timestamp format.
type Format struct {
	// Name is the human-readable format name.
	Name string `json:"name"`

	// Pattern is the compiled regex with exactly one capture group
	// isolating the timestamp substring (set during init).
	Pattern *regexp.Regexp `json:"-"`

	// PatternStr is the pattern string for config output.
	PatternStr string `json:"pattern"`

	// Layouts are Go time layouts tried as the fast parse path before
	// falling back to the flexible parser.
	Layouts []string `json:"layouts"`

	// YearLess marks formats whose layouts carry no year (syslog, logcat).
	YearLess bool `json:"year_less,omitempty"`

	// Examples are sample timestamps.
	Examples []string `json:"examples,omitempty"`
}

// BuiltinFormats returns the built-in timestamp formats in priority order.
// Order is a performance choice (most common formats first), not a
// correctness one: overlapping patterns are deliberate and first match wins.
func BuiltinFormats() []*Format {
	formats := []*Format{
		// ISO 8601 with space separator
		{
			Name:       "iso8601_basic",
			PatternStr: `^\s*(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(?:\.\d{1,6})?)`,
			Layouts:    []string{"2006-01-02 15:04:05.999999"},
			Examples:   []string{"2025-10-05 00:00:02", "2025-10-05 00:00:02.123"},
		},
		// Unix syslog, day not zero-padded
		{
			Name:       "syslog",
			PatternStr: `^\s*([A-Z][a-z]{2}\s+\d{1,2} \d{2}:\d{2}:\d{2})`,
			Layouts:    []string{"Jan _2 15:04:05"},
			YearLess:   true,
			Examples:   []string{"Oct  5 00:00:02", "Oct 15 14:30:02"},
		},
		// ISO 8601 with T separator, optional fraction and offset
		{
			Name:       "iso8601_extended",
			PatternStr: `^\s*(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d{1,6})?(?:Z|[+-]\d{2}:\d{2})?)`,
			Layouts: []string{
				"2006-01-02T15:04:05.999999Z07:00",
				"2006-01-02T15:04:05.999999",
			},
			Examples: []string{"2025-10-05T14:30:02Z", "2025-10-05T14:30:02.123+02:00"},
		},
		// Android logcat, no year
		{
			Name:       "logcat",
			PatternStr: `^\s*(\d{2}-\d{2} \d{2}:\d{2}:\d{2}(?:\.\d{1,3})?)`,
			Layouts:    []string{"01-02 15:04:05.999"},
			YearLess:   true,
			Examples:   []string{"10-05 00:00:02.123"},
		},
		// Nginx default error log date
		{
			Name:       "nginx",
			PatternStr: `^\s*(\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2})`,
			Layouts:    []string{"2006/01/02 15:04:05"},
			Examples:   []string{"2025/10/05 14:30:02"},
		},
		// US date ordering
		{
			Name:       "us_datetime",
			PatternStr: `^\s*(\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2}(?:\.\d{1,3})?)`,
			Layouts:    []string{"01/02/2006 15:04:05.999"},
			Examples:   []string{"10/05/2025 14:30:02.123"},
		},
		// Apache common log format; appears mid-line after the client address
		{
			Name:       "apache_clf",
			PatternStr: `(\d{2}/[A-Z][a-z]{2}/\d{4}:\d{2}:\d{2}:\d{2})`,
			Layouts:    []string{"02/Jan/2006:15:04:05"},
			Examples:   []string{"05/Oct/2025:14:30:02"},
		},
		// Readable month-name date, optional comma
		{
			Name:       "custom_readable",
			PatternStr: `^\s*([A-Z][a-z]{2} \d{1,2},? \d{4} \d{1,2}:\d{2}:\d{2}(?:\.\d{1,3})?)`,
			Layouts: []string{
				"Jan 2, 2006 15:04:05.999",
				"Jan 2 2006 15:04:05.999",
			},
			Examples: []string{"Oct 05, 2025 00:00:02.123", "Oct 5 2025 9:30:02"},
		},
		// European date ordering, dot-separated
		{
			Name:       "european",
			PatternStr: `^\s*(\d{1,2}\.\d{1,2}\.\d{4} \d{2}:\d{2}:\d{2}(?:\.\d{1,3})?)`,
			Layouts:    []string{"2.1.2006 15:04:05.999"},
			Examples:   []string{"5.10.2025 14:30:02"},
		},
	}

	// Compile all patterns
	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
