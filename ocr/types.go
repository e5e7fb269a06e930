package ocr

import "context"

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
	ImageFormatTIFF ImageFormat = "image/tiff"
)

// Region describes a rectangular area in pixel coordinates with the origin in
// the upper-left corner of the image.
type Region struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// IsEmpty reports whether the region has non-positive dimensions.
func (r Region) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Input encapsulates a single image submitted for OCR.
type Input struct {
	// ID is an optional caller-provided identifier that is echoed back in the
	// corresponding Result.
	ID string
	// Image is the encoded image payload in the format specified by Format.
	Image []byte
	// Format declares the image content type (e.g., image/png).
	Format ImageFormat
	// PageIndex links the input back to the zero-based page index where the
	// image originated.
	PageIndex int
	// DPI carries the effective dots-per-inch for the image. Providers such as
	// Tesseract use this for scaling and layout heuristics; zero means unknown.
	DPI int
	// Languages is a list of provider language codes (e.g., "eng", "deu")
	// used to select trained data.
	Languages []string
	// Metadata allows callers to pass through engine-specific knobs (e.g.,
	// "tessedit_pageseg_mode") without hard-coding them into the API surface.
	Metadata map[string]string
}

// Word is a single recognized token. Start and End are byte offsets of the
// word within the Result's PlainText, so spans found by text-based entity
// recognition can be projected back onto Bounds.
type Word struct {
	Text       string
	Bounds     Region
	Confidence float64
	Start      int
	End        int
}

// Result captures OCR output for a single input image.
type Result struct {
	// InputID mirrors the Input.ID that produced this result.
	InputID string
	// PlainText is the linearized recognized text. When Words is non-empty,
	// PlainText is exactly the word texts joined so that each Word's
	// Start/End offsets index into it.
	PlainText string
	// Words carries the recognized tokens with positional metadata. May be
	// empty for providers that only return flat text.
	Words []Word
	// Language indicates the language the engine was asked to recognize.
	Language string
}

// WordsInSpan returns the words whose byte range overlaps [start, end) in
// the result's PlainText. Used to turn an entity text span into the set of
// pixel regions that must be painted over.
func (r Result) WordsInSpan(start, end int) []Word {
	var hits []Word
	for _, w := range r.Words {
		if w.Start < end && w.End > start {
			hits = append(hits, w)
		}
	}
	return hits
}

// Engine is the OCR provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}

// TessLang maps a pipeline language tag to the Tesseract trained-data code.
// Unknown tags pass through unchanged.
func TessLang(tag string) string {
	switch tag {
	case "de":
		return "deu"
	case "en":
		return "eng"
	default:
		return tag
	}
}

// NopEngine recognizes nothing. It stands in for a real provider in tests
// and keeps the pipeline constructible without Tesseract installed.
type NopEngine struct{}

func (NopEngine) Name() string { return "nop" }

func (NopEngine) Recognize(_ context.Context, input Input) (Result, error) {
	return Result{InputID: input.ID}, nil
}
