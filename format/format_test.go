package format

import "testing"

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		format Format
		want   string
	}{
		{"default", 1, Default, "src/a.rs: 12 Lines"},
		{"bullet", 1, Bullet, "*\tsrc/a.rs: 12 Lines"},
		{"markdown", 1, Markdown, "-\tsrc/a.rs: 12 Lines"},
		{"numeric first", 1, Numeric, "1.)\tsrc/a.rs: 12 Lines"},
		{"numeric tenth", 10, Numeric, "10.)\tsrc/a.rs: 12 Lines"},
		{"index ignored outside numeric", 7, Markdown, "-\tsrc/a.rs: 12 Lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLine(tt.index, "src/a.rs", 12, tt.format)
			if got != tt.want {
				t.Errorf("FormatLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %v, want %v", f.String(), got, f)
		}
	}

	for _, bad := range []string{"numeric", "Markdown", "", "LIST"} {
		if _, err := ParseFormat(bad); err == nil {
			t.Errorf("ParseFormat(%q): expected error", bad)
		}
	}
}

func TestUnknownFormatString(t *testing.T) {
	if got := Format(42).String(); got != "Format(42)" {
		t.Errorf("String() = %q", got)
	}
}
