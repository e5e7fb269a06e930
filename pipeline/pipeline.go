// Package pipeline orchestrates document anonymization: classify the input,
// extract text or page images, recognize PII, redact it, and assemble the
// representation the caller asked for. A pipeline is stateless per request;
// all shared state lives in the engines manager.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/redactkit/redactkit/anonymize"
	"github.com/redactkit/redactkit/config"
	"github.com/redactkit/redactkit/engines"
	"github.com/redactkit/redactkit/extract"
	"github.com/redactkit/redactkit/filetype"
	"github.com/redactkit/redactkit/observability"
	"github.com/redactkit/redactkit/ocr"
	"github.com/redactkit/redactkit/recognize"
)

// scanTextThreshold is the minimum trimmed character count for a PDF's
// structural text to count as a real text layer. Anything shorter is treated
// as a scan and routed through OCR.
const scanTextThreshold = 100

// OutputMode selects the representation of the anonymized result.
type OutputMode string

const (
	ModeAuto  OutputMode = "auto"
	ModeText  OutputMode = "text"
	ModeImage OutputMode = "image"
)

// Document is one incoming file: raw bytes plus the declared filename.
type Document struct {
	Content  []byte
	Filename string
}

// Result is the assembled pipeline output. Kind is "text" (Text carries the
// anonymized content) or "binary" (Binary carries a redacted image or a
// reassembled PDF, with ContentType set).
type Result struct {
	Kind           string
	OriginalType   string
	Text           string
	Binary         []byte
	ContentType    string
	PIICount       int
	PagesProcessed int
}

// Pipeline runs documents through the anonymization sequence.
type Pipeline struct {
	cfg       config.Config
	manager   *engines.Manager
	operators anonymize.OperatorSet
	log       observability.Logger
}

// New builds a pipeline over the shared engines manager. A nil logger
// disables logging.
func New(cfg config.Config, manager *engines.Manager, log observability.Logger) *Pipeline {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Pipeline{
		cfg:       cfg,
		manager:   manager,
		operators: operatorsFromConfig(cfg),
		log:       log.With(observability.String("component", "pipeline")),
	}
}

// Ready reports whether the heavy engines have been constructed, without
// triggering construction.
func (p *Pipeline) Ready() bool { return p.manager.Built() }

// WarmUp constructs the heavy engines if they are not built yet.
func (p *Pipeline) WarmUp() {
	p.manager.Engines()
}

// Process runs one document through the full pipeline. It either fully
// succeeds with a complete Result or fails with an error from the taxonomy
// in errors.go; no partial output is ever returned.
func (p *Pipeline) Process(ctx context.Context, doc Document, mode OutputMode, language string) (Result, error) {
	start := time.Now()

	if int64(len(doc.Content)) > p.cfg.MaxFileSizeBytes() {
		return Result{}, fmt.Errorf("%w: %d bytes, limit %d MB",
			ErrOversizeInput, len(doc.Content), p.cfg.MaxFileSizeMB)
	}

	lang := p.cfg.LanguageOrDefault(language)
	if !p.languageSupported(lang) {
		return Result{}, fmt.Errorf("%w: language %q not configured", ErrUnsupportedFormat, lang)
	}
	if mode == "" {
		mode = ModeAuto
	}

	kind := filetype.Detect(doc.Content, doc.Filename)
	p.log.Info("document classified",
		observability.String("filename", doc.Filename),
		observability.String("type", string(kind)),
		observability.Int("bytes", len(doc.Content)))

	var res Result
	var err error
	switch kind {
	case filetype.Text:
		res, err = p.processText(string(doc.Content), "text", lang)
	case filetype.Docx:
		res, err = p.processDocx(doc.Content, lang)
	case filetype.PDF:
		res, err = p.processPDF(ctx, doc.Content, mode, lang)
	case filetype.Image:
		res, err = p.processImage(ctx, doc.Content, mode, lang)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, doc.Filename)
	}
	if err != nil {
		return Result{}, err
	}

	p.log.Info("document anonymized",
		observability.String("original_type", res.OriginalType),
		observability.Int("pii_count", res.PIICount),
		observability.Int("pages", res.PagesProcessed),
		observability.Int64("duration_ms", time.Since(start).Milliseconds()))
	return res, nil
}

func (p *Pipeline) processText(text, originalType, lang string) (Result, error) {
	engine := p.recognitionEngine()
	entities, err := engine.Recognize(text, lang, p.cfg.AnonymizeKinds, p.cfg.ScoreThreshold)
	if err != nil {
		return Result{}, processingErr("recognition", err)
	}
	return Result{
		Kind:         "text",
		OriginalType: originalType,
		Text:         anonymize.Text(text, entities, p.operators),
		PIICount:     len(entities),
	}, nil
}

func (p *Pipeline) processDocx(content []byte, lang string) (Result, error) {
	text, err := extract.DocxText(content)
	if err != nil {
		// No fallback path exists for an unreadable DOCX.
		return Result{}, processingErr("docx extraction", err)
	}
	return p.processText(text, "docx", lang)
}

func (p *Pipeline) processPDF(ctx context.Context, content []byte, mode OutputMode, lang string) (Result, error) {
	text := extract.PDFText(content)
	if len(strings.TrimSpace(text)) >= scanTextThreshold {
		return p.processText(text, "pdf_text", lang)
	}

	// Too little structural text: treat as a scan and work on page images.
	pages := extract.PDFToImages(content, p.cfg.OCRDPI)
	if len(pages) > p.cfg.MaxPages {
		p.log.Warn("page cap applied",
			observability.Int("pages", len(pages)),
			observability.Int("cap", p.cfg.MaxPages))
		pages = pages[:p.cfg.MaxPages]
	}

	redacted := make([]image.Image, 0, len(pages))
	total := 0
	for i, page := range pages {
		// Pages are independent; honor cancellation between them.
		select {
		case <-ctx.Done():
			return Result{}, processingErr("rasterized pages", ctx.Err())
		default:
		}
		out, count, err := p.redactPage(ctx, page, i, lang)
		if err != nil {
			return Result{}, err
		}
		redacted = append(redacted, out)
		total += count
	}

	if mode == ModeText {
		combined, err := p.pagesToText(ctx, redacted, lang)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Kind:           "text",
			OriginalType:   "pdf_scan",
			Text:           combined,
			PIICount:       total,
			PagesProcessed: len(redacted),
		}, nil
	}

	out, err := extract.ImagesToPDF(redacted)
	if err != nil {
		return Result{}, processingErr("pdf assembly", err)
	}
	return Result{
		Kind:           "binary",
		OriginalType:   "pdf_scan",
		Binary:         out,
		ContentType:    "application/pdf",
		PIICount:       total,
		PagesProcessed: len(redacted),
	}, nil
}

func (p *Pipeline) processImage(ctx context.Context, content []byte, mode OutputMode, lang string) (Result, error) {
	img, format, err := extract.DecodeImage(content)
	if err != nil {
		return Result{}, processingErr("image decode", err)
	}

	redacted, count, err := p.redactPage(ctx, img, 0, lang)
	if err != nil {
		return Result{}, err
	}

	if mode == ModeText {
		text, err := p.ocrImage(ctx, redacted, 0, lang)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Kind:         "text",
			OriginalType: "image",
			Text:         text,
			PIICount:     count,
		}, nil
	}

	encoded, contentType, err := extract.EncodeImage(redacted, format)
	if err != nil {
		return Result{}, processingErr("image encode", err)
	}
	return Result{
		Kind:         "binary",
		OriginalType: "image",
		Binary:       encoded,
		ContentType:  contentType,
		PIICount:     count,
	}, nil
}

// redactPage OCRs one page image, recognizes PII on the recognized text, and
// paints over the word boxes of every accepted detection.
func (p *Pipeline) redactPage(ctx context.Context, img image.Image, pageIndex int, lang string) (image.Image, int, error) {
	_, ocrEngine := p.manager.Engines()

	in, err := ocr.InputFromImage(img, pageIndex,
		ocr.WithLanguages(ocr.TessLang(lang)),
		ocr.WithDPI(p.cfg.OCRDPI))
	if err != nil {
		return nil, 0, processingErr("ocr input", err)
	}
	res, err := ocrEngine.Recognize(ctx, in)
	if err != nil {
		return nil, 0, processingErr("ocr", err)
	}

	engine := p.recognitionEngine()
	entities, err := engine.Recognize(res.PlainText, lang, p.cfg.AnonymizeKinds, p.cfg.ScoreThreshold)
	if err != nil {
		return nil, 0, processingErr("recognition", err)
	}

	regions := anonymize.Regions(res, entities)
	return anonymize.Image(img, regions, anonymize.ParseFill(p.cfg.Fill)), len(entities), nil
}

// pagesToText OCRs the already-redacted pages and joins them with page
// markers, preserving page order.
func (p *Pipeline) pagesToText(ctx context.Context, pages []image.Image, lang string) (string, error) {
	parts := make([]string, 0, len(pages))
	for i, page := range pages {
		text, err := p.ocrImage(ctx, page, i, lang)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("--- Page %d ---\n%s", i+1, text))
	}
	return strings.Join(parts, "\n\n"), nil
}

func (p *Pipeline) ocrImage(ctx context.Context, img image.Image, pageIndex int, lang string) (string, error) {
	_, ocrEngine := p.manager.Engines()
	in, err := ocr.InputFromImage(img, pageIndex,
		ocr.WithLanguages(ocr.TessLang(lang)),
		ocr.WithDPI(p.cfg.OCRDPI))
	if err != nil {
		return "", processingErr("ocr input", err)
	}
	res, err := ocrEngine.Recognize(ctx, in)
	if err != nil {
		return "", processingErr("ocr", err)
	}
	return res.PlainText, nil
}

func (p *Pipeline) recognitionEngine() *recognize.Engine {
	recognizers, _ := p.manager.Engines()
	return recognize.NewEngine(recognizers, p.cfg.SupportedLanguages, p.log)
}

func (p *Pipeline) languageSupported(lang string) bool {
	for _, l := range p.cfg.SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

func operatorsFromConfig(cfg config.Config) anonymize.OperatorSet {
	ops := anonymize.DefaultOperators()
	if cfg.DefaultReplacement != "" {
		ops.Default = anonymize.Operator{Replacement: cfg.DefaultReplacement}
	}
	for kind, literal := range cfg.Replacements {
		ops.ByKind[recognize.Kind(kind)] = anonymize.Operator{Replacement: literal}
	}
	return ops
}
