package recognize

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redactkit/redactkit/observability"
)

// ErrUnsupportedLanguage is returned when recognition is requested for a
// language the engine was not configured with.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Engine runs a recognizer set over a text and reduces the raw candidates to
// a clean, non-overlapping, thresholded detection list.
type Engine struct {
	recognizers []Recognizer
	languages   map[string]bool
	log         observability.Logger
}

// NewEngine builds an engine over the given recognizers, restricted to the
// supported language tags. A nil logger disables logging.
func NewEngine(recognizers []Recognizer, languages []string, log observability.Logger) *Engine {
	if log == nil {
		log = observability.NopLogger{}
	}
	supported := make(map[string]bool, len(languages))
	for _, l := range languages {
		supported[l] = true
	}
	return &Engine{
		recognizers: recognizers,
		languages:   supported,
		log:         log.With(observability.String("component", "recognize")),
	}
}

// Recognize scans text and returns accepted detections ordered by start
// offset. Only kinds present in allowed are emitted; detections scoring
// below threshold after context boosting are discarded. Empty or
// whitespace-only text short-circuits without invoking any recognizer.
func (e *Engine) Recognize(text, language string, allowed []Kind, threshold float64) ([]Entity, error) {
	if !e.languages[language] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	allowedSet := make(map[Kind]bool, len(allowed))
	for _, k := range allowed {
		allowedSet[k] = true
	}

	var tokens []token // built lazily, only when a recognizer needs boosting
	var candidates []Entity
	for _, rec := range e.recognizers {
		if !appliesTo(rec, language) {
			continue
		}
		found := rec.Recognize(text)
		keywords := rec.ContextWords()
		for _, c := range found {
			if !allowedSet[c.Kind] {
				continue
			}
			if len(keywords) > 0 {
				if tokens == nil {
					tokens = tokenize(text)
				}
				c.Score = boostScore(tokens, c, keywords)
			}
			candidates = append(candidates, c)
		}
	}

	merged := merge(candidates)

	accepted := merged[:0]
	for _, c := range merged {
		if c.Score >= threshold {
			accepted = append(accepted, c)
		}
	}
	e.log.Debug("recognition complete",
		observability.Int("candidates", len(candidates)),
		observability.Int("accepted", len(accepted)),
		observability.Float64("threshold", threshold))
	return accepted, nil
}

func appliesTo(rec Recognizer, language string) bool {
	langs := rec.Languages()
	if len(langs) == 0 {
		return true
	}
	for _, l := range langs {
		if l == language {
			return true
		}
	}
	return false
}

// merge resolves overlapping candidates: within each cluster of transitively
// overlapping spans, exactly one detection survives: highest score first,
// then widest span, then earliest start. The result is sorted by start and
// guaranteed overlap-free.
func merge(candidates []Entity) []Entity {
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start < candidates[j].Start
		}
		return candidates[i].End > candidates[j].End
	})

	var out []Entity
	best := candidates[0]
	clusterEnd := candidates[0].End
	for _, c := range candidates[1:] {
		if c.Start < clusterEnd {
			if better(c, best) {
				best = c
			}
			if c.End > clusterEnd {
				clusterEnd = c.End
			}
			continue
		}
		out = append(out, best)
		best = c
		clusterEnd = c.End
	}
	out = append(out, best)
	return out
}

func better(a, b Entity) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Width() != b.Width() {
		return a.Width() > b.Width()
	}
	return a.Start < b.Start
}
