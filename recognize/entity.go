// Package recognize detects PII entities in text. A set of recognizers
// (regex patterns, composite patterns, statistical NER) independently emit
// scored candidates; the engine boosts weak candidates that have
// corroborating context keywords nearby, resolves overlapping spans, and
// discards everything below the caller's confidence threshold.
package recognize

// Kind is a PII entity category.
type Kind string

const (
	KindPerson        Kind = "PERSON"
	KindEmail         Kind = "EMAIL_ADDRESS"
	KindPhone         Kind = "PHONE_NUMBER"
	KindLocation      Kind = "LOCATION"
	KindIBAN          Kind = "IBAN_CODE"
	KindPostalCode    Kind = "DE_POSTAL_CODE"
	KindStreetAddress Kind = "DE_STREET_ADDRESS"
	KindAddress       Kind = "DE_ADDRESS"

	// Kinds that are typically configured as "keep" for this domain: they
	// are recognized but excluded from the anonymize list, not suppressed
	// by the engine itself.
	KindOrganization Kind = "ORGANIZATION"
	KindNRP          Kind = "NRP"
)

// Entity is one accepted detection: a byte span in the source text, the
// category it was classified as, and the confidence in [0,1].
type Entity struct {
	Kind       Kind
	Start      int
	End        int
	Score      float64
	Recognizer string
}

// Width returns the span length in bytes.
func (e Entity) Width() int { return e.End - e.Start }

// Overlaps reports whether two spans share at least one byte.
func (e Entity) Overlaps(other Entity) bool {
	return e.Start < other.End && other.Start < e.End
}
