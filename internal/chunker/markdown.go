// Package chunker splits markdown-like source documents into bounded,
// heading-respecting chunks suitable for retrieval indexing.
package chunker

import (
	"strings"

	"inquiry/internal/textutil"
)

// Splitter cuts a document into chunks of at most MaxChars characters,
// preferring heading boundaries. A heading line always flushes the current
// buffer; a buffer that would overflow MaxChars is flushed before the next
// line is appended, so one chunk can exceed the budget by at most one line.
type Splitter struct {
	maxChars int
}

const defaultMaxChars = 900

func NewSplitter(maxChars int) *Splitter {
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}
	return &Splitter{maxChars: maxChars}
}

// Split returns the ordered chunk sequence for doc. Output chunks are
// whitespace-normalized and never empty; identical input yields identical
// output.
func (s *Splitter) Split(doc string) []string {
	var parts []string
	flush := func(buf string) {
		if c := textutil.Clean(buf); c != "" {
			parts = append(parts, c)
		}
	}
	var buf strings.Builder
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") && buf.Len() > 0 {
			flush(buf.String())
			buf.Reset()
		}
		if buf.Len()+len(line)+1 > s.maxChars {
			flush(buf.String())
			buf.Reset()
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	flush(buf.String())
	return parts
}
