// Package filetype classifies uploaded document bytes into the handful of
// content kinds the anonymization pipeline knows how to process. Detection
// prefers magic byte signatures and falls back to the filename extension.
package filetype

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Type is the classified content kind of a document.
type Type string

const (
	PDF     Type = "pdf"
	Image   Type = "image"
	Docx    Type = "docx"
	Text    Type = "text"
	Unknown Type = "unknown"
)

var (
	sigPDF  = []byte("%PDF")
	sigPNG  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	sigJPEG = []byte{0xFF, 0xD8, 0xFF}
	sigGIF  = []byte("GIF8")
	sigZIP  = []byte{'P', 'K', 0x03, 0x04}
)

var extensions = map[string]Type{
	".pdf":  PDF,
	".png":  Image,
	".jpg":  Image,
	".jpeg": Image,
	".gif":  Image,
	".tif":  Image,
	".tiff": Image,
	".bmp":  Image,
	".docx": Docx,
	".txt":  Text,
	".md":   Text,
	".csv":  Text,
}

// Detect classifies content by magic signature, falling back to the filename
// extension. A ZIP signature counts as DOCX only when the filename says so;
// bare ZIP archives stay Unknown. Detect never fails: inputs that match
// nothing classify as Unknown.
func Detect(content []byte, filename string) Type {
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case bytes.HasPrefix(content, sigPDF):
		return PDF
	case bytes.HasPrefix(content, sigPNG),
		bytes.HasPrefix(content, sigJPEG),
		bytes.HasPrefix(content, sigGIF):
		return Image
	case bytes.HasPrefix(content, sigZIP):
		if ext == ".docx" {
			return Docx
		}
		return Unknown
	}

	if t, ok := extensions[ext]; ok {
		return t
	}
	return Unknown
}
