package timestamp

import "testing"

func TestDetectFormats_Syslog(t *testing.T) {
	lines := []string{
		"Jun 14 15:16:01 combo sshd(pam_unix)[19939]: authentication failure",
		"Jun 14 15:16:02 combo sshd[19939]: Failed password for root",
		"Jun 14 15:16:03 combo sshd[19939]: Connection closed",
	}

	rec := New(WithDefaultYear(2025))
	result := rec.DetectFormats(lines)

	if !result.HasMatch() {
		t.Fatal("expected to detect a format")
	}

	best := result.BestMatch()
	if best.Format.Name != "syslog" {
		t.Errorf("best match = %s, want syslog", best.Format.Name)
	}
	if best.MatchCount != 3 {
		t.Errorf("match count = %d, want 3", best.MatchCount)
	}
	if best.Confidence != 1.0 {
		t.Errorf("confidence = %.2f, want 1.0", best.Confidence)
	}
	if result.ParsedLines != 3 {
		t.Errorf("parsed lines = %d, want 3", result.ParsedLines)
	}
}

func TestDetectFormats_Mixed(t *testing.T) {
	lines := []string{
		"2025-10-05 00:00:01 INFO one",
		"2025-10-05 00:00:02 INFO two",
		"plain line without a timestamp",
		"2025-10-05 00:00:03 INFO three",
	}

	rec := New()
	result := rec.DetectFormats(lines)

	best := result.BestMatch()
	if best == nil {
		t.Fatal("expected a best match")
	}
	if best.Format.Name != "iso8601_basic" {
		t.Errorf("best match = %s, want iso8601_basic", best.Format.Name)
	}
	if best.MatchCount != 3 {
		t.Errorf("match count = %d, want 3", best.MatchCount)
	}
	if best.Confidence != 0.75 {
		t.Errorf("confidence = %.2f, want 0.75", best.Confidence)
	}
}

func TestDetectFormats_SkipsCommentsAndBlanks(t *testing.T) {
	lines := []string{
		"# a comment",
		"",
		"no timestamps anywhere",
	}

	rec := New()
	result := rec.DetectFormats(lines)

	if result.HasMatch() {
		t.Errorf("expected no match, got %s", result.BestMatch().Format.Name)
	}
	if result.SampledLines != 3 {
		t.Errorf("sampled lines = %d, want 3", result.SampledLines)
	}
}

func TestDetectFormats_Empty(t *testing.T) {
	rec := New()
	result := rec.DetectFormats(nil)

	if result.HasMatch() {
		t.Error("expected no match on empty input")
	}
	if result.BestMatch() != nil {
		t.Error("expected nil best match on empty input")
	}
}
