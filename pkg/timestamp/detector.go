package timestamp

import (
	"sort"
	"strings"
	"time"
)

// DetectionResult holds the result of analyzing a sample of log lines.
type DetectionResult struct {
	Matches      []FormatMatch `json:"matches"`       // Formats that matched, sorted by confidence descending
	SampledLines int           `json:"sampled_lines"` // Number of lines sampled
	ParsedLines  int           `json:"parsed_lines"`  // Number of lines matched by the best format
}

// FormatMatch represents a format that matched with its confidence score.
type FormatMatch struct {
	Format     *Format   `json:"format"`
	Confidence float64   `json:"confidence"` // 0.0 to 1.0 (fraction of lines matched)
	MatchCount int       `json:"match_count"`
	SampleLine string    `json:"sample_line"`
	ParsedTime time.Time `json:"parsed_time"`
}

// DetectFormats analyzes a slice of log lines and reports which formats
// from the recognizer's table match, with what confidence. Empty lines
// and comment lines are skipped.
func (r *Recognizer) DetectFormats(lines []string) *DetectionResult {
	result := &DetectionResult{
		SampledLines: len(lines),
	}

	if len(lines) == 0 {
		return result
	}

	type formatStats struct {
		format     *Format
		matchCount int
		sampleLine string
		parsedTime time.Time
	}

	stats := make(map[string]*formatStats)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		for _, format := range r.formats {
			matches := format.Pattern.FindStringSubmatch(line)
			if len(matches) < 2 {
				continue
			}

			parsed, ok := r.Parse(matches[1])
			if !ok {
				continue
			}

			key := format.Name
			if stats[key] == nil {
				stats[key] = &formatStats{
					format:     format,
					sampleLine: line,
					parsedTime: parsed,
				}
			}
			stats[key].matchCount++
		}
	}

	for _, s := range stats {
		result.Matches = append(result.Matches, FormatMatch{
			Format:     s.format,
			Confidence: float64(s.matchCount) / float64(len(lines)),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
			ParsedTime: s.parsedTime,
		})
	}

	// Sort by confidence descending; for ties prefer longer patterns
	// (more specific).
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return len(result.Matches[i].Format.PatternStr) > len(result.Matches[j].Format.PatternStr)
	})

	if len(result.Matches) > 0 {
		result.ParsedLines = result.Matches[0].MatchCount
	}

	return result
}

// BestMatch returns the highest confidence match, or nil if none found.
func (r *DetectionResult) BestMatch() *FormatMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// HasMatch returns true if at least one format matched.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}
