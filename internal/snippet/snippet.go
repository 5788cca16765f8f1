// Package snippet turns ranked retrieval results into the numbered context
// block handed to the generator and the parallel citation list returned to
// the user.
package snippet

import (
	"strconv"
	"strings"

	"inquiry/internal/domain"
	"inquiry/internal/textutil"
)

// previewChars bounds the citation preview taken from a chunk's first line.
const previewChars = 80

// Assemble builds the ContextBundle for results in rank order. The i-th
// (1-based) result contributes the context line "[i] <full text>" and the
// citation "[i] <preview>". Empty input yields an empty bundle.
func Assemble(results []domain.RankedResult) domain.ContextBundle {
	if len(results) == 0 {
		return domain.ContextBundle{}
	}
	lines := make([]string, 0, len(results))
	citations := make([]string, 0, len(results))
	for i, res := range results {
		tag := "[" + strconv.Itoa(i+1) + "]"
		preview := strings.TrimSpace(textutil.Truncate(textutil.FirstLine(res.Text), previewChars))
		citations = append(citations, tag+" "+preview)
		lines = append(lines, tag+" "+res.Text)
	}
	return domain.ContextBundle{
		Context:   strings.Join(lines, "\n\n"),
		Citations: citations,
	}
}
