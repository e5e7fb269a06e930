package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/redactkit/redactkit/observability"
	"github.com/redactkit/redactkit/pipeline"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "redactkit"})
}

// handleReady lazily builds the heavy engines so the first readiness probe
// pays the model-loading cost instead of the first user request.
func (s *Server) handleReady(c *gin.Context) {
	s.pipe.WarmUp()
	if !s.pipe.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "models_loaded": true})
}

func (s *Server) handleAnonymize(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file upload"})
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file upload"})
		return
	}

	mode := pipeline.OutputMode(c.DefaultPostForm("output_format", "auto"))
	language := c.PostForm("language")

	doc := pipeline.Document{Content: content, Filename: fileHeader.Filename}
	res, err := s.pipe.Process(c.Request.Context(), doc, mode, language)
	if err != nil {
		s.writeError(c, doc.Filename, err)
		return
	}

	if res.Kind == "binary" {
		c.Header("X-Original-Type", res.OriginalType)
		if res.PagesProcessed > 0 {
			c.Header("X-Pages-Processed", strconv.Itoa(res.PagesProcessed))
		}
		c.Data(http.StatusOK, res.ContentType, res.Binary)
		return
	}

	body := gin.H{
		"type":            "text",
		"original_type":   res.OriginalType,
		"anonymized_text": res.Text,
		"pii_found":       res.PIICount,
	}
	if res.PagesProcessed > 0 {
		body["pages_processed"] = res.PagesProcessed
	}
	c.JSON(http.StatusOK, body)
}

// writeError maps pipeline failures onto HTTP statuses without leaking
// internal detail to the caller.
func (s *Server) writeError(c *gin.Context, filename string, err error) {
	requestID := c.GetString("request_id")
	log := s.log.With(
		observability.String("request_id", requestID),
		observability.String("filename", filename))

	switch {
	case errors.Is(err, pipeline.ErrOversizeInput):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
	case errors.Is(err, pipeline.ErrUnsupportedFormat):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported file type or language"})
	default:
		var procErr *pipeline.ProcessingError
		if errors.As(err, &procErr) {
			log.Error("processing failed",
				observability.String("stage", procErr.Stage),
				observability.Error("err", procErr.Err))
		} else {
			log.Error("processing failed", observability.Error("err", err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "processing error"})
		return
	}
	log.Warn("request rejected", observability.Error("err", err))
}
