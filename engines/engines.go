// Package engines owns the process-wide heavy resources: the statistical
// recognition model and the OCR backend. Both are expensive to construct and
// read-only afterwards, so they are built lazily at most once per process
// and shared across all concurrent requests.
package engines

import (
	"sync"
	"sync/atomic"

	"github.com/redactkit/redactkit/ocr"
	"github.com/redactkit/redactkit/ocr/tesseract"
	"github.com/redactkit/redactkit/recognize"
)

// Manager constructs and hands out the shared engines. The first caller of
// Engines pays the model-loading cost; concurrent callers arriving before
// the build finishes block on the mutex instead of building duplicates, and
// every later caller takes the lock-free fast path.
type Manager struct {
	buildRecognizers func() []recognize.Recognizer
	buildOCR         func() ocr.Engine

	mu          sync.Mutex
	built       atomic.Bool
	recognizers []recognize.Recognizer
	ocrEngine   ocr.Engine
}

// NewManager creates a manager producing the production engines: the
// built-in pattern set plus the statistical NER recognizer, and the
// Tesseract OCR backend.
func NewManager() *Manager {
	return NewManagerWith(
		func() []recognize.Recognizer {
			return append(recognize.DefaultRecognizers(), recognize.NewNERRecognizer())
		},
		func() ocr.Engine { return tesseract.New() },
	)
}

// NewManagerWith creates a manager with injected constructors.
func NewManagerWith(buildRecognizers func() []recognize.Recognizer, buildOCR func() ocr.Engine) *Manager {
	return &Manager{buildRecognizers: buildRecognizers, buildOCR: buildOCR}
}

// Engines returns the shared recognizer set and OCR engine, constructing
// them on first use.
func (m *Manager) Engines() ([]recognize.Recognizer, ocr.Engine) {
	if m.built.Load() {
		return m.recognizers, m.ocrEngine
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.built.Load() {
		m.recognizers = m.buildRecognizers()
		m.ocrEngine = m.buildOCR()
		// Publish only after both engines are in place; Built observers
		// must never see a half-constructed manager.
		m.built.Store(true)
	}
	return m.recognizers, m.ocrEngine
}

// Built reports whether the heavy engines have been constructed. It never
// triggers construction, which keeps readiness probes side-effect free.
func (m *Manager) Built() bool {
	return m.built.Load()
}
