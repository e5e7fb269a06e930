package ocr

import (
	"reflect"
	"testing"
)

func TestWordsInSpan(t *testing.T) {
	// "Jane Doe Berlin" with per-word offsets.
	res := Result{
		PlainText: "Jane Doe Berlin",
		Words: []Word{
			{Text: "Jane", Start: 0, End: 4},
			{Text: "Doe", Start: 5, End: 8},
			{Text: "Berlin", Start: 9, End: 15},
		},
	}

	hits := res.WordsInSpan(0, 8)
	if len(hits) != 2 || hits[0].Text != "Jane" || hits[1].Text != "Doe" {
		t.Fatalf("unexpected words for [0,8): %+v", hits)
	}

	hits = res.WordsInSpan(6, 10)
	if len(hits) != 2 || hits[0].Text != "Doe" || hits[1].Text != "Berlin" {
		t.Fatalf("unexpected words for [6,10): %+v", hits)
	}

	if hits := res.WordsInSpan(4, 5); hits != nil {
		t.Fatalf("expected no words for the separator span, got %+v", hits)
	}
}

func TestTessLang(t *testing.T) {
	cases := map[string]string{"de": "deu", "en": "eng", "fra": "fra"}
	for in, want := range cases {
		if got := TessLang(in); got != want {
			t.Fatalf("TessLang(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRegionIsEmpty(t *testing.T) {
	if (Region{Width: 10, Height: 5}).IsEmpty() {
		t.Fatal("non-empty region reported empty")
	}
	if !(Region{Width: 0, Height: 5}).IsEmpty() {
		t.Fatal("zero-width region not reported empty")
	}
}

func TestWithMetadataCopies(t *testing.T) {
	meta := map[string]string{"tessedit_pageseg_mode": "6"}
	var in Input
	WithMetadata(meta)(&in)
	meta["tessedit_pageseg_mode"] = "7"
	if in.Metadata["tessedit_pageseg_mode"] != "6" {
		t.Fatalf("metadata was not copied: %+v", in.Metadata)
	}
}

func TestWithLanguages(t *testing.T) {
	var in Input
	WithLanguages("deu", "eng")(&in)
	if !reflect.DeepEqual(in.Languages, []string{"deu", "eng"}) {
		t.Fatalf("unexpected languages: %+v", in.Languages)
	}
}
