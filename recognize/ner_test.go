package recognize

import (
	"reflect"
	"testing"
)

func TestMapLabel(t *testing.T) {
	if k, ok := mapLabel("PERSON"); !ok || k != KindPerson {
		t.Fatalf("unexpected mapping for PERSON: %v %v", k, ok)
	}
	if k, ok := mapLabel("GPE"); !ok || k != KindLocation {
		t.Fatalf("unexpected mapping for GPE: %v %v", k, ok)
	}
	if _, ok := mapLabel("MONEY"); ok {
		t.Fatal("unmapped label must not be emitted")
	}
}

func TestAllIndexes(t *testing.T) {
	got := allIndexes("ab ab ab", "ab")
	if !reflect.DeepEqual(got, []int{0, 3, 6}) {
		t.Fatalf("unexpected indexes: %v", got)
	}
	if got := allIndexes("abc", "xyz"); got != nil {
		t.Fatalf("expected no indexes, got %v", got)
	}
}

func TestNERRecognizerSpans(t *testing.T) {
	text := "Barack Obama visited Berlin last spring together with Angela Merkel."
	rec := NewNERRecognizer()

	for _, e := range rec.Recognize(text) {
		if e.Start < 0 || e.End > len(text) || e.Start >= e.End {
			t.Fatalf("invalid span: %+v", e)
		}
		if e.Score != nerScore {
			t.Fatalf("unexpected score: %+v", e)
		}
		if e.Kind != KindPerson && e.Kind != KindLocation {
			t.Fatalf("unexpected kind: %+v", e)
		}
	}
}
