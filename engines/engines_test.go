package engines

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/redactkit/redactkit/ocr"
	"github.com/redactkit/redactkit/recognize"
)

func TestEnginesBuiltOnce(t *testing.T) {
	var builds atomic.Int32
	m := NewManagerWith(
		func() []recognize.Recognizer {
			builds.Add(1)
			return recognize.DefaultRecognizers()
		},
		func() ocr.Engine { return ocr.NopEngine{} },
	)

	if m.Built() {
		t.Fatal("manager reports built before first use")
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recs, engine := m.Engines()
			if len(recs) == 0 || engine == nil {
				t.Error("engines not constructed")
			}
		}()
	}
	wg.Wait()

	if got := builds.Load(); got != 1 {
		t.Fatalf("expected exactly one build, got %d", got)
	}
	if !m.Built() {
		t.Fatal("manager does not report built after construction")
	}
}

func TestBuiltHasNoSideEffects(t *testing.T) {
	var builds atomic.Int32
	m := NewManagerWith(
		func() []recognize.Recognizer { builds.Add(1); return nil },
		func() ocr.Engine { return ocr.NopEngine{} },
	)
	for i := 0; i < 3; i++ {
		if m.Built() {
			t.Fatal("unexpected built state")
		}
	}
	if builds.Load() != 0 {
		t.Fatalf("Built() triggered construction %d times", builds.Load())
	}
}
