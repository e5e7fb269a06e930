package recognize

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// nerScore is the confidence assigned to statistical detections. The model
// is precise on broad categories but carries no per-entity probability, so a
// fixed high score mirrors how model-backed recognizers are usually ranked
// against weak structural patterns.
const nerScore = 0.85

// NERRecognizer detects person and location names with the prose statistical
// model. Coverage is coarse for non-English locales, which is why the
// locale-tuned pattern recognizers exist alongside it.
type NERRecognizer struct{}

// NewNERRecognizer constructs the statistical recognizer. The underlying
// model data is loaded on first use; construct this once per process via the
// engines manager.
func NewNERRecognizer() *NERRecognizer { return &NERRecognizer{} }

func (r *NERRecognizer) Name() string           { return "ner" }
func (r *NERRecognizer) Languages() []string    { return nil }
func (r *NERRecognizer) ContextWords() []string { return nil }

func (r *NERRecognizer) Recognize(text string) []Entity {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil
	}

	var out []Entity
	seen := make(map[int]bool)
	for _, ent := range doc.Entities() {
		kind, ok := mapLabel(ent.Label)
		if !ok || ent.Text == "" {
			continue
		}
		// prose reports entity text without positions; locate every
		// occurrence in the source. Duplicate spans collapse in the merge
		// step, repeated occurrences each get their own detection.
		for _, start := range allIndexes(text, ent.Text) {
			if seen[start] {
				continue
			}
			seen[start] = true
			out = append(out, Entity{
				Kind:       kind,
				Start:      start,
				End:        start + len(ent.Text),
				Score:      nerScore,
				Recognizer: r.Name(),
			})
		}
	}
	return out
}

func mapLabel(label string) (Kind, bool) {
	switch label {
	case "PERSON":
		return KindPerson, true
	case "GPE":
		return KindLocation, true
	default:
		return "", false
	}
}

func allIndexes(text, needle string) []int {
	var idxs []int
	offset := 0
	for {
		i := strings.Index(text[offset:], needle)
		if i < 0 {
			return idxs
		}
		idxs = append(idxs, offset+i)
		offset += i + len(needle)
	}
}
