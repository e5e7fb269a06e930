// Package anonymize turns accepted PII detections into safe output: literal
// replacement for text spans, solid fills for image regions.
package anonymize

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/redactkit/redactkit/recognize"
)

// Operator is the replacement rule for one entity kind.
type Operator struct {
	Replacement string
}

// OperatorSet maps entity kinds to operators with a default for unmapped
// kinds, so an unknown kind is always redacted rather than silently kept.
type OperatorSet struct {
	ByKind  map[recognize.Kind]Operator
	Default Operator
}

// For returns the operator configured for kind, or the default.
func (s OperatorSet) For(kind recognize.Kind) Operator {
	if op, ok := s.ByKind[kind]; ok {
		return op
	}
	return s.Default
}

// DefaultOperators returns the stock replacement literals. Kinds without an
// explicit mapping (postal codes, street addresses) fall through to the
// block-character default.
func DefaultOperators() OperatorSet {
	return OperatorSet{
		ByKind: map[recognize.Kind]Operator{
			recognize.KindPerson:   {Replacement: "[PERSON]"},
			recognize.KindEmail:    {Replacement: "[E-MAIL]"},
			recognize.KindPhone:    {Replacement: "[TELEFON]"},
			recognize.KindLocation: {Replacement: "[ORT]"},
			recognize.KindIBAN:     {Replacement: "[IBAN]"},
		},
		Default: Operator{Replacement: "██████████"},
	}
}

// ParseFill interprets a fill policy string: "black", "white", or "#rrggbb".
// Anything unparseable falls back to black, the conservative choice for
// redaction.
func ParseFill(s string) color.Color {
	switch strings.ToLower(s) {
	case "", "black":
		return color.Black
	case "white":
		return color.White
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, errR := strconv.ParseUint(s[1:3], 16, 8)
		g, errG := strconv.ParseUint(s[3:5], 16, 8)
		b, errB := strconv.ParseUint(s[5:7], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
		}
	}
	return color.Black
}
