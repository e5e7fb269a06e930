package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// docx stores the document body in word/document.xml inside the zip
// container. Paragraph runs carry the visible text in <w:t> elements.
const docxDocumentPath = "word/document.xml"

type docxBody struct {
	Paragraphs []docxParagraph `xml:"body>p"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Texts []string `xml:"t"`
}

// DocxText extracts paragraph text from a DOCX file in document order,
// separated by newlines. Unlike PDF extraction this fails hard: a corrupt
// DOCX has no scan fallback.
func DocxText(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open docx container: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != docxDocumentPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", docxDocumentPath, err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read %s: %w", docxDocumentPath, err)
		}
		break
	}
	if docXML == nil {
		return "", fmt.Errorf("docx container has no %s", docxDocumentPath)
	}

	var body docxBody
	if err := xml.Unmarshal(docXML, &body); err != nil {
		return "", fmt.Errorf("parse document body: %w", err)
	}

	paragraphs := make([]string, 0, len(body.Paragraphs))
	for _, p := range body.Paragraphs {
		var sb strings.Builder
		for _, r := range p.Runs {
			for _, t := range r.Texts {
				sb.WriteString(t)
			}
		}
		paragraphs = append(paragraphs, sb.String())
	}
	return strings.Join(paragraphs, "\n"), nil
}
