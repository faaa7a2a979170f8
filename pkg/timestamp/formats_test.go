package timestamp

import "testing"

func TestBuiltinFormats_Compile(t *testing.T) {
	formats := BuiltinFormats()

	if len(formats) != 9 {
		t.Fatalf("expected 9 builtin formats, got %d", len(formats))
	}

	for _, f := range formats {
		if f.Pattern == nil {
			t.Errorf("%s: pattern not compiled", f.Name)
		}
		if f.Pattern.NumSubexp() != 1 {
			t.Errorf("%s: expected exactly 1 capture group, got %d", f.Name, f.Pattern.NumSubexp())
		}
		if len(f.Layouts) == 0 {
			t.Errorf("%s: no fast-path layouts", f.Name)
		}
	}
}

func TestBuiltinFormats_ExamplesMatch(t *testing.T) {
	rec := New(WithDefaultYear(2025))

	for _, f := range BuiltinFormats() {
		for _, example := range f.Examples {
			t.Run(f.Name+"/"+example, func(t *testing.T) {
				matches := f.Pattern.FindStringSubmatch(example)
				if len(matches) < 2 {
					t.Fatalf("example %q does not match its own pattern", example)
				}
				if matches[1] != example {
					t.Errorf("capture = %q, want the full example %q", matches[1], example)
				}
				if _, ok := rec.Parse(matches[1]); !ok {
					t.Errorf("example %q does not parse", example)
				}
			})
		}
	}
}

func TestBuiltinFormats_Order(t *testing.T) {
	want := []string{
		"iso8601_basic",
		"syslog",
		"iso8601_extended",
		"logcat",
		"nginx",
		"us_datetime",
		"apache_clf",
		"custom_readable",
		"european",
	}

	formats := BuiltinFormats()
	for i, name := range want {
		if formats[i].Name != name {
			t.Errorf("formats[%d] = %s, want %s", i, formats[i].Name, name)
		}
	}
}
