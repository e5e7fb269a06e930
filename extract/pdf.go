// Package extract pulls text and raster images out of the document formats
// the pipeline accepts. Extraction is deliberately forgiving: wherever the
// pipeline has a fallback path (a PDF with no structural text is treated as
// a scan), failure degrades to an empty result instead of an error.
package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFText extracts structural text from a PDF, page by page, joining
// non-empty pages with a blank line. It returns "" when the document has no
// extractable text or cannot be parsed at all; callers use short output as
// the scanned-document signal.
func PDFText(content []byte) (text string) {
	// ledongthuc/pdf panics on some malformed inputs; a broken PDF must
	// degrade to the scan path, not take the request down.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return ""
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(content); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}
	return strings.Join(pages, "\n\n")
}
