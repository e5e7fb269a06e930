package recognize

import (
	"strings"
	"unicode"
)

// Context boosting parameters. A keyword hit inside the token window raises
// a weak candidate's score by boostFactor and guarantees at least boostFloor,
// capped at 1. The floor lets a near-zero structural pattern clear a 0.4
// threshold exactly when the surrounding text corroborates it.
const (
	contextWindow = 5
	boostFactor   = 0.45
	boostFloor    = 0.4
)

type token struct {
	text  string
	start int
	end   int
}

// tokenize splits text into lowercased word tokens with byte offsets.
func tokenize(text string) []token {
	var tokens []token
	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, token{text: strings.ToLower(text[start:i]), start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{text: strings.ToLower(text[start:]), start: start, end: len(text)})
	}
	return tokens
}

// boostScore returns the candidate's score after context boosting: unchanged
// when no keyword appears within contextWindow tokens of the span.
func boostScore(tokens []token, e Entity, keywords []string) float64 {
	if len(keywords) == 0 {
		return e.Score
	}

	// Locate the token range covered by the entity span.
	first, last := -1, -1
	for i, tok := range tokens {
		if tok.end <= e.Start {
			continue
		}
		if tok.start >= e.End {
			break
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return e.Score
	}

	lo := first - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := last + contextWindow
	if hi > len(tokens)-1 {
		hi = len(tokens) - 1
	}

	for i := lo; i <= hi; i++ {
		if i >= first && i <= last {
			continue
		}
		for _, kw := range keywords {
			if tokens[i].text == kw {
				boosted := e.Score + boostFactor
				if boosted < boostFloor {
					boosted = boostFloor
				}
				if boosted > 1 {
					boosted = 1
				}
				return boosted
			}
		}
	}
	return e.Score
}
