package anonymize

import (
	"image"
	"image/color"
	"testing"

	"github.com/redactkit/redactkit/ocr"
	"github.com/redactkit/redactkit/recognize"
)

func TestTextReplacement(t *testing.T) {
	text := "Contact Jane Doe at jane@example.com today"
	entities := []recognize.Entity{
		{Kind: recognize.KindPerson, Start: 8, End: 16, Score: 0.85},
		{Kind: recognize.KindEmail, Start: 20, End: 36, Score: 0.95},
	}

	got := Text(text, entities, DefaultOperators())
	want := "Contact [PERSON] at [E-MAIL] today"
	if got != want {
		t.Fatalf("unexpected output: %q, want %q", got, want)
	}
}

func TestTextIdentityWithoutEntities(t *testing.T) {
	text := "No sensitive content here."
	if got := Text(text, nil, DefaultOperators()); got != text {
		t.Fatalf("expected identity, got %q", got)
	}
}

func TestTextUntouchedOutsideSpans(t *testing.T) {
	text := "aaa SECRET bbb HIDDEN ccc"
	entities := []recognize.Entity{
		{Kind: recognize.KindPerson, Start: 4, End: 10},
		{Kind: recognize.KindEmail, Start: 15, End: 21},
	}
	got := Text(text, entities, DefaultOperators())
	if got != "aaa [PERSON] bbb [E-MAIL] ccc" {
		t.Fatalf("characters outside spans were altered: %q", got)
	}
}

func TestTextDefaultOperator(t *testing.T) {
	text := "PLZ 10115"
	entities := []recognize.Entity{{Kind: recognize.KindPostalCode, Start: 4, End: 9}}
	got := Text(text, entities, DefaultOperators())
	if got != "PLZ ██████████" {
		t.Fatalf("expected default operator for unmapped kind, got %q", got)
	}
}

func TestRegions(t *testing.T) {
	res := ocr.Result{
		PlainText: "Jane Doe Berlin",
		Words: []ocr.Word{
			{Text: "Jane", Start: 0, End: 4, Bounds: ocr.Region{X: 0, Y: 0, Width: 40, Height: 12}},
			{Text: "Doe", Start: 5, End: 8, Bounds: ocr.Region{X: 45, Y: 0, Width: 30, Height: 12}},
			{Text: "Berlin", Start: 9, End: 15, Bounds: ocr.Region{X: 0, Y: 20, Width: 60, Height: 12}},
		},
	}
	entities := []recognize.Entity{{Kind: recognize.KindPerson, Start: 0, End: 8}}

	regions := Regions(res, entities)
	if len(regions) != 2 {
		t.Fatalf("expected one region per covered word, got %+v", regions)
	}
	if regions[0].X != 0 || regions[1].X != 45 {
		t.Fatalf("unexpected regions: %+v", regions)
	}
}

func TestImageRedaction(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 10))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			src.Set(x, y, white)
		}
	}

	out := Image(src, []ocr.Region{{X: 5, Y: 2, Width: 4, Height: 3}}, color.Black)

	if out.Bounds() != src.Bounds() {
		t.Fatalf("dimensions changed: %v vs %v", out.Bounds(), src.Bounds())
	}
	// Inside the padded box: black.
	if r, g, b, _ := out.At(6, 3).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Fatal("pixel inside region not filled")
	}
	// Well outside the box: unchanged.
	if r, _, _, _ := out.At(15, 8).RGBA(); r == 0 {
		t.Fatal("pixel outside region was modified")
	}
	// Source not mutated.
	if r, _, _, _ := src.At(6, 3).RGBA(); r == 0 {
		t.Fatal("source image was mutated")
	}
}

func TestImageNoRegions(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	out := Image(src, nil, color.Black)
	if out.Bounds() != src.Bounds() {
		t.Fatal("dimensions changed")
	}
}

func TestParseFill(t *testing.T) {
	if ParseFill("black") != color.Black {
		t.Fatal("black not parsed")
	}
	if ParseFill("white") != color.White {
		t.Fatal("white not parsed")
	}
	c := ParseFill("#ff0080")
	if c != (color.RGBA{R: 0xFF, G: 0x00, B: 0x80, A: 0xFF}) {
		t.Fatalf("hex fill not parsed: %+v", c)
	}
	if ParseFill("chartreuse?") != color.Black {
		t.Fatal("unparseable fill must fall back to black")
	}
}
