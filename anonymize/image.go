package anonymize

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/redactkit/redactkit/ocr"
	"github.com/redactkit/redactkit/recognize"
)

// boxPadding widens each fill rectangle by a pixel on every side so glyph
// antialiasing at the word edge cannot survive the redaction.
const boxPadding = 1

// Regions maps accepted detections on OCR'd text back to the pixel regions
// that must be painted: for each entity span, the bounds of every OCR word
// overlapping it. An entity wrapping across lines yields one region per word.
func Regions(res ocr.Result, entities []recognize.Entity) []ocr.Region {
	var regions []ocr.Region
	for _, e := range entities {
		for _, w := range res.WordsInSpan(e.Start, e.End) {
			if !w.Bounds.IsEmpty() {
				regions = append(regions, w.Bounds)
			}
		}
	}
	return regions
}

// Image returns a copy of img with every region painted in the fill color.
// The source image is never mutated and output dimensions equal the input's;
// only pixels inside the regions change.
func Image(img image.Image, regions []ocr.Region, fill color.Color) image.Image {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	uniform := &image.Uniform{C: fill}
	for _, r := range regions {
		rect := image.Rect(
			int(math.Floor(r.X))-boxPadding,
			int(math.Floor(r.Y))-boxPadding,
			int(math.Ceil(r.X+r.Width))+boxPadding,
			int(math.Ceil(r.Y+r.Height))+boxPadding,
		).Add(bounds.Min).Intersect(bounds)
		if rect.Empty() {
			continue
		}
		draw.Draw(out, rect, uniform, image.Point{}, draw.Src)
	}
	return out
}
