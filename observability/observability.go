package observability

import (
	"fmt"
	"io"
	"sync"
	"time"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type int64Field struct {
	key string
	val int64
}

func (f int64Field) Key() string        { return f.key }
func (f int64Field) Value() interface{} { return f.val }

type float64Field struct {
	key string
	val float64
}

func (f float64Field) Key() string        { return f.key }
func (f float64Field) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field          { return stringField{key, value} }
func Int(key string, value int) Field         { return intField{key, value} }
func Int64(key string, value int64) Field     { return int64Field{key, value} }
func Float64(key string, value float64) Field { return float64Field{key, value} }
func Error(key string, err error) Field       { return errorField{key, err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// LineLogger writes one "level=... msg=... k=v" line per call. It is the
// concrete logger used by the daemon; libraries should accept the Logger
// interface and default to NopLogger.
type LineLogger struct {
	mu    *sync.Mutex
	w     io.Writer
	bound []Field
}

// NewLineLogger creates a LineLogger writing to w.
func NewLineLogger(w io.Writer) *LineLogger {
	return &LineLogger{mu: &sync.Mutex{}, w: w}
}

func (l *LineLogger) log(level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s level=%s msg=%q", time.Now().UTC().Format(time.RFC3339), level, msg)
	for _, f := range l.bound {
		fmt.Fprintf(l.w, " %s=%v", f.Key(), f.Value())
	}
	for _, f := range fields {
		fmt.Fprintf(l.w, " %s=%v", f.Key(), f.Value())
	}
	fmt.Fprintln(l.w)
}

func (l *LineLogger) Debug(msg string, fields ...Field) { l.log("debug", msg, fields) }
func (l *LineLogger) Info(msg string, fields ...Field)  { l.log("info", msg, fields) }
func (l *LineLogger) Warn(msg string, fields ...Field)  { l.log("warn", msg, fields) }
func (l *LineLogger) Error(msg string, fields ...Field) { l.log("error", msg, fields) }

func (l *LineLogger) With(fields ...Field) Logger {
	bound := make([]Field, 0, len(l.bound)+len(fields))
	bound = append(bound, l.bound...)
	bound = append(bound, fields...)
	return &LineLogger{mu: l.mu, w: l.w, bound: bound}
}

// Standard metric names emitted by the pipeline.
const (
	MetricPipelineTime  = "anonymize.pipeline.duration"
	MetricEntityCount   = "anonymize.entities.count"
	MetricPageCount     = "anonymize.pages.count"
	MetricOCRTime       = "anonymize.ocr.duration"
	MetricRecognizeTime = "anonymize.recognize.duration"
)
