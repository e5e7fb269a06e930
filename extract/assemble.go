package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"strings"
)

// jpegQuality for page images embedded in assembled PDFs. Redacted scans are
// intermediate artifacts; 90 keeps them legible without bloating the output.
const jpegQuality = 90

// ImagesToPDF reassembles raster images, in order, into a single multi-page
// PDF. Each image becomes one page whose media box matches the image pixel
// dimensions (one pixel per point) with the image embedded as a DCTDecode
// XObject. An empty input yields empty bytes.
func ImagesToPDF(images []image.Image) ([]byte, error) {
	if len(images) == 0 {
		return nil, nil
	}

	w := newPDFWriter()
	w.header()

	// Object numbering: 1 catalog, 2 page tree, then a (page, contents,
	// image) triple per page.
	catalog := 1
	pageTree := 2
	firstPage := 3

	kids := make([]string, 0, len(images))
	for i := range images {
		kids = append(kids, fmt.Sprintf("%d 0 R", firstPage+i*3))
	}

	w.object(catalog, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pageTree))
	w.object(pageTree, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(images)))

	for i, img := range images {
		bounds := img.Bounds()
		width, height := bounds.Dx(), bounds.Dy()
		pageObj := firstPage + i*3
		contentObj := pageObj + 1
		imageObj := pageObj + 2

		w.object(pageObj, fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %d %d] "+
				"/Resources << /XObject << /Im0 %d 0 R >> >> /Contents %d 0 R >>",
			pageTree, width, height, imageObj, contentObj))

		content := fmt.Sprintf("q %d 0 0 %d 0 0 cm /Im0 Do Q", width, height)
		w.stream(contentObj, "<< /Length %d >>", []byte(content))

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", i, err)
		}
		dict := fmt.Sprintf("<< /Type /XObject /Subtype /Image /Width %d /Height %d "+
			"/ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode /Length %%d >>",
			width, height)
		w.stream(imageObj, dict, buf.Bytes())
	}

	return w.finish(catalog), nil
}

// pdfWriter emits a classic cross-reference-table PDF. Offsets are recorded
// as objects are written so the xref and trailer can be produced at the end.
type pdfWriter struct {
	buf     bytes.Buffer
	offsets map[int]int
	maxObj  int
}

func newPDFWriter() *pdfWriter {
	return &pdfWriter{offsets: make(map[int]int)}
}

func (w *pdfWriter) header() {
	w.buf.WriteString("%PDF-1.7\n")
	// Binary marker so transfer tools treat the file as binary.
	w.buf.Write([]byte{'%', 0xE2, 0xE3, 0xCF, 0xD3, '\n'})
}

func (w *pdfWriter) begin(num int) {
	w.offsets[num] = w.buf.Len()
	if num > w.maxObj {
		w.maxObj = num
	}
	fmt.Fprintf(&w.buf, "%d 0 obj\n", num)
}

func (w *pdfWriter) object(num int, body string) {
	w.begin(num)
	w.buf.WriteString(body)
	w.buf.WriteString("\nendobj\n")
}

// stream writes a stream object. dictFormat must contain a single %d verb
// for the stream length.
func (w *pdfWriter) stream(num int, dictFormat string, data []byte) {
	w.begin(num)
	fmt.Fprintf(&w.buf, dictFormat, len(data))
	w.buf.WriteString("\nstream\n")
	w.buf.Write(data)
	w.buf.WriteString("\nendstream\nendobj\n")
}

func (w *pdfWriter) finish(root int) []byte {
	xrefOffset := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n", w.maxObj+1)
	w.buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= w.maxObj; i++ {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", w.offsets[i])
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		w.maxObj+1, root, xrefOffset)
	return w.buf.Bytes()
}
