package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// EncodeImage encodes img in the named format ("png", "jpeg", ...) as
// reported by DecodeImage, so redacted images leave the pipeline in the same
// format they arrived in. The returned content type matches the encoding.
func EncodeImage(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer
	var err error
	contentType := "image/" + format

	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	case "tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		// Unknown source formats leave as PNG rather than failing the
		// request after redaction already succeeded.
		contentType = "image/png"
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, "", fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), contentType, nil
}
