package model

import (
	"regexp"
	"strings"
)

// Path represents a file system path.
type Path string

// virtualFilePattern matches macro expansion segments such as
// `/project/src/lib.cairo[array_inline_macro][assert_macro]`.
var virtualFilePattern = regexp.MustCompile(`\[.*?]`)

// IsVirtual reports whether the path points into code generated by a macro.
func (p Path) IsVirtual() bool {
	return virtualFilePattern.MatchString(string(p))
}

// WithoutVirtualSegments strips every bracketed macro segment from the path.
func (p Path) WithoutVirtualSegments() Path {
	return Path(virtualFilePattern.ReplaceAllString(string(p), ""))
}

// Contains reports whether other occurs anywhere inside p.
//
// Dependency sources resolve to absolute paths outside of the project root,
// so plain containment is enough to tell user code apart.
func (p Path) Contains(other Path) bool {
	return strings.Contains(string(p), string(other))
}

// LineNumber is a 1-based source line number.
type LineNumber int

// LineRange is an inclusive range of 1-based source lines.
type LineRange struct {
	Start LineNumber
	End   LineNumber
}

// Lines returns every line of the range, start and end included.
func (r LineRange) Lines() []LineNumber {
	if r.End < r.Start {
		return []LineNumber{r.Start}
	}

	lines := make([]LineNumber, 0, int(r.End-r.Start)+1)
	for line := r.Start; line <= r.End; line++ {
		lines = append(lines, line)
	}

	return lines
}
