package recognize

import "regexp"

// Recognizer emits candidate detections for one scan over a text. The engine
// treats all variants uniformly; pattern-based recognizers additionally
// expose context keywords that make them eligible for confidence boosting.
type Recognizer interface {
	Name() string
	// Languages lists the language tags the recognizer applies to. Empty
	// means every supported language.
	Languages() []string
	Recognize(text string) []Entity
	// ContextWords returns the keywords that corroborate this recognizer's
	// matches. Empty disables context boosting for it.
	ContextWords() []string
}

// PatternRecognizer detects one entity kind with a regular expression and a
// base confidence. Structurally weak patterns (a bare five-digit number)
// carry a deliberately low base score and rely on context boosting to become
// actionable.
type PatternRecognizer struct {
	RecognizerName string
	Kind           Kind
	Langs          []string
	Pattern        *regexp.Regexp
	Score          float64
	Context        []string
}

func (r *PatternRecognizer) Name() string           { return r.RecognizerName }
func (r *PatternRecognizer) Languages() []string    { return r.Langs }
func (r *PatternRecognizer) ContextWords() []string { return r.Context }

func (r *PatternRecognizer) Recognize(text string) []Entity {
	var out []Entity
	for _, loc := range r.Pattern.FindAllStringIndex(text, -1) {
		out = append(out, Entity{
			Kind:       r.Kind,
			Start:      loc[0],
			End:        loc[1],
			Score:      r.Score,
			Recognizer: r.RecognizerName,
		})
	}
	return out
}

// DefaultRecognizers returns the built-in pattern set, tuned for the German
// and English locales the service supports. Base scores follow the usual
// convention: 0.9+ for structurally unambiguous formats, below 0.7 for
// patterns with real false-positive risk, and near-zero for patterns that
// are only meaningful with corroborating context.
func DefaultRecognizers() []Recognizer {
	return []Recognizer{
		// Email: unambiguous structural markers (@, domain, TLD).
		&PatternRecognizer{
			RecognizerName: "email-pattern",
			Kind:           KindEmail,
			Pattern:        regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`),
			Score:          0.95,
		},
		// Phone: international prefix or leading zero, then grouped digits.
		// Broad enough to hit German mobile and landline formats, so it
		// leans on context to clear the threshold.
		&PatternRecognizer{
			RecognizerName: "phone-pattern",
			Kind:           KindPhone,
			Pattern:        regexp.MustCompile(`(?:\+\d{1,3}|\b0\d{1,4})(?:[ \-/]?\d{2,11}){1,4}\b`),
			Score:          0.6,
			Context:        []string{"telefon", "phone", "tel", "mobil", "handy", "fon", "erreichbar"},
		},
		// IBAN-like: country code, check digits, grouped alphanumerics.
		&PatternRecognizer{
			RecognizerName: "iban-pattern",
			Kind:           KindIBAN,
			Pattern:        regexp.MustCompile(`\b[A-Z]{2}\d{2}(?: ?[A-Z0-9]{4}){2,7}(?: ?[A-Z0-9]{1,4})?\b`),
			Score:          0.5,
			Context:        []string{"iban", "konto", "kontonummer", "bank", "account"},
		},
		// German postal code: five digits match countless non-PII numbers,
		// hence the near-zero base score. Context words raise it past the
		// threshold only when the surrounding text talks about addresses.
		&PatternRecognizer{
			RecognizerName: "de-postal-code",
			Kind:           KindPostalCode,
			Langs:          []string{"de"},
			Pattern:        regexp.MustCompile(`\b\d{5}\b`),
			Score:          0.01,
			Context: []string{
				"plz", "postleitzahl", "adresse", "anschrift", "wohnhaft",
				"wohnt", "address", "postal", "ort",
			},
		},
		// German street address: capitalized street name with a street-type
		// suffix and house number.
		&PatternRecognizer{
			RecognizerName: "de-street-address",
			Kind:           KindStreetAddress,
			Langs:          []string{"de"},
			Pattern: regexp.MustCompile(
				`\b\p{Lu}[\p{L}ß\-]*(?:straße|strasse|str\.|weg|platz|allee|gasse|ring|damm|ufer)\s+\d+[a-zA-Z]?\b`),
			Score:   0.5,
			Context: []string{"adresse", "anschrift", "wohnhaft", "wohnt", "address"},
		},
		// Compound: postal code immediately followed by a capitalized place
		// name. The combination is far less ambiguous than either part, so
		// it fires at high confidence without needing context.
		&PatternRecognizer{
			RecognizerName: "de-postal-city",
			Kind:           KindAddress,
			Langs:          []string{"de"},
			Pattern:        regexp.MustCompile(`\b\d{5}\s+\p{Lu}[\p{L}\-]+(?:\s\p{Lu}[\p{L}\-]+)?`),
			Score:          0.85,
		},
	}
}
