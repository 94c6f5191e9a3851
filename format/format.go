package format

import "fmt"

// Format selects how a per-file result line is rendered
type Format int

const (
	Default Format = iota
	Bullet
	Markdown
	Numeric
)

var names = map[Format]string{
	Default:  "DEFAULT",
	Bullet:   "BULLET",
	Markdown: "MARKDOWN",
	Numeric:  "NUMERIC",
}

// Formats lists every format in declaration order
var Formats = []Format{Default, Bullet, Markdown, Numeric}

func (f Format) String() string {
	if n, ok := names[f]; ok {
		return n
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps an upper-case name like "NUMERIC" to its Format.
// Matching is case-sensitive.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if names[f] == name {
			return f, nil
		}
	}
	return Default, fmt.Errorf("unknown output format %q", name)
}

// FormatLine renders one result line. index is only used by Numeric.
func FormatLine(index int, path string, count int, f Format) string {
	switch f {
	case Bullet:
		return fmt.Sprintf("*\t%s: %d Lines", path, count)
	case Markdown:
		return fmt.Sprintf("-\t%s: %d Lines", path, count)
	case Numeric:
		return fmt.Sprintf("%d.)\t%s: %d Lines", index, path, count)
	default:
		return fmt.Sprintf("%s: %d Lines", path, count)
	}
}
