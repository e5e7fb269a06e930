package extract

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestPDFTextMalformedInput(t *testing.T) {
	if got := PDFText([]byte("not a pdf at all")); got != "" {
		t.Fatalf("expected empty text for malformed input, got %q", got)
	}
	if got := PDFText(nil); got != "" {
		t.Fatalf("expected empty text for nil input, got %q", got)
	}
}

func TestPDFToImagesMalformedInput(t *testing.T) {
	if pages := PDFToImages([]byte("%PDF-garbage"), 72); len(pages) != 0 {
		t.Fatalf("expected no pages, got %d", len(pages))
	}
}

func TestDocxText(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Curriculum </w:t></w:r><w:r><w:t>Vitae</w:t></w:r></w:p>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := DocxText(buildDocx(t, doc))
	if err != nil {
		t.Fatalf("docx text: %v", err)
	}
	if text != "Curriculum Vitae\nJane Doe" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestDocxTextCorrupt(t *testing.T) {
	if _, err := DocxText([]byte("PK\x03\x04 truncated")); err == nil {
		t.Fatal("expected error for corrupt container")
	}

	// Valid zip, but without a document body.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("other.xml"); err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if _, err := DocxText(buf.Bytes()); err == nil {
		t.Fatal("expected error when document.xml is missing")
	}
}

func TestImagesToPDF(t *testing.T) {
	pages := []image.Image{solidImage(40, 30, color.White), solidImage(20, 50, color.Black)}

	out, err := ImagesToPDF(pages)
	if err != nil {
		t.Fatalf("images to pdf: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-1.7")) {
		t.Fatalf("missing pdf header: %q", out[:16])
	}
	body := string(out)
	if !strings.Contains(body, "/Count 2") {
		t.Fatal("expected two pages in page tree")
	}
	if !strings.Contains(body, "/MediaBox [0 0 40 30]") || !strings.Contains(body, "/MediaBox [0 0 20 50]") {
		t.Fatal("media boxes do not match source image dimensions")
	}
	if strings.Count(body, "/Filter /DCTDecode") != 2 {
		t.Fatal("expected one DCTDecode image per page")
	}
	if !strings.HasSuffix(body, "%%EOF\n") {
		t.Fatal("missing trailer terminator")
	}
}

func TestImagesToPDFEmpty(t *testing.T) {
	out, err := ImagesToPDF(nil)
	if err != nil {
		t.Fatalf("images to pdf: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(out))
	}
}

func TestDecodeImage(t *testing.T) {
	if _, _, err := DecodeImage([]byte("not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}
