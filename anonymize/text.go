package anonymize

import (
	"sort"
	"strings"

	"github.com/redactkit/redactkit/recognize"
)

// Text replaces each detected span with its operator's literal. Entities
// must be non-overlapping (the recognition engine's merge step guarantees
// this); replacement proceeds from the last span backward so earlier offsets
// stay valid, and characters outside the detected spans are never touched.
func Text(text string, entities []recognize.Entity, ops OperatorSet) string {
	if len(entities) == 0 {
		return text
	}

	sorted := make([]recognize.Entity, len(entities))
	copy(sorted, entities)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	var sb strings.Builder
	out := text
	for _, e := range sorted {
		if e.Start < 0 || e.End > len(out) || e.Start >= e.End {
			continue
		}
		sb.Reset()
		sb.WriteString(out[:e.Start])
		sb.WriteString(ops.For(e.Kind).Replacement)
		sb.WriteString(out[e.End:])
		out = sb.String()
	}
	return out
}
