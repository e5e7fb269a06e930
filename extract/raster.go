package extract

import (
	"bytes"
	"image"

	// Decoders for the image kinds the classifier accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is the rasterization resolution used when the caller does not
// override it. 200 DPI trades OCR accuracy against render time and memory.
const DefaultDPI = 200

// PDFToImages rasterizes every page of a PDF at the given resolution. A nil
// or empty result means "no pages to process" and is not an error condition;
// unreadable documents simply yield no pages.
func PDFToImages(content []byte, dpi int) []image.Image {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return nil
	}
	defer doc.Close()

	var pages []image.Image
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			continue
		}
		pages = append(pages, img)
	}
	return pages
}

// DecodeImage decodes an encoded raster image and reports its format name
// ("png", "jpeg", ...). Unlike the PDF helpers this returns an error: an
// undecodable image has no fallback path.
func DecodeImage(content []byte) (image.Image, string, error) {
	return image.Decode(bytes.NewReader(content))
}
