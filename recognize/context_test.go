package recognize

import "testing"

func TestTokenize(t *testing.T) {
	tokens := tokenize("PLZ: 10115, Berlin-Mitte!")
	want := []string{"plz", "10115", "berlin", "mitte"}
	if len(tokens) != len(want) {
		t.Fatalf("unexpected token count: %+v", tokens)
	}
	for i, w := range want {
		if tokens[i].text != w {
			t.Fatalf("token %d: got %q, want %q", i, tokens[i].text, w)
		}
	}
	// Offsets must index back into the source.
	src := "PLZ: 10115, Berlin-Mitte!"
	for _, tok := range tokens {
		if len(src[tok.start:tok.end]) == 0 {
			t.Fatalf("empty token span: %+v", tok)
		}
	}
}

func TestBoostScoreWindow(t *testing.T) {
	text := "eins zwei drei vier fünf sechs sieben acht neun zehn adresse 12345"
	tokens := tokenize(text)
	entity := Entity{Start: 0, End: 4, Score: 0.01} // "eins"

	// "adresse" is ten tokens away from "eins": outside the window.
	if got := boostScore(tokens, entity, []string{"adresse"}); got != 0.01 {
		t.Fatalf("keyword outside window must not boost: %v", got)
	}

	// "12345" is adjacent to "adresse": inside the window.
	start := len(text) - len("12345")
	near := Entity{Start: start, End: len(text), Score: 0.01}
	if got := boostScore(tokens, near, []string{"adresse"}); got < boostFloor {
		t.Fatalf("expected boost to at least the floor, got %v", got)
	}
}

func TestBoostScoreCap(t *testing.T) {
	text := "adresse 12345"
	tokens := tokenize(text)
	e := Entity{Start: 8, End: 13, Score: 0.9}
	if got := boostScore(tokens, e, []string{"adresse"}); got != 1.0 {
		t.Fatalf("expected score capped at 1.0, got %v", got)
	}
}

func TestBoostScoreNoKeywords(t *testing.T) {
	tokens := tokenize("plain text 12345")
	e := Entity{Start: 11, End: 16, Score: 0.2}
	if got := boostScore(tokens, e, nil); got != 0.2 {
		t.Fatalf("no keywords must leave score unchanged: %v", got)
	}
}
