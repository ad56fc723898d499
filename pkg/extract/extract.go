// Package extract turns chat attachments into plain text.
//
// A Registry maps declared content types onto format-specific extractors:
//
//   - application/pdf                         → PDF (pdfcpu, page-aware)
//   - ...wordprocessingml.document            → DOCX (word/document.xml)
//   - application/msword                      → legacy DOC (best-effort scan)
//   - text/plain, text/markdown               → plain text
//   - image/*                                 → vision → OCR → basic-info cascade
//
// Unknown types fail with UnsupportedFormatError; the caller converts that
// into a per-file failure record rather than aborting the batch.
package extract

import (
	"context"
	"strings"
	"time"

	"ai-docchat-be/pkg/ocr"
	"ai-docchat-be/pkg/vision"
)

// Extractor converts one attachment into an ExtractedContent record.
type Extractor interface {
	Extract(ctx context.Context, ref AttachmentReference) (*ExtractedContent, error)
}

// Dispatcher resolves a declared content type to the extractor to invoke.
type Dispatcher interface {
	ExtractorFor(contentType string) (Extractor, error)
}

// Config wires the registry's collaborators. Vision and OCR are optional
// capability providers; a nil provider skips its stage in the image cascade.
type Config struct {
	Vision       vision.Provider
	OCR          ocr.Provider
	StageTimeout time.Duration
}

func (c *Config) defaults() {
	if c.StageTimeout <= 0 {
		c.StageTimeout = 10 * time.Second
	}
}

// Registry is the format dispatcher.
type Registry struct {
	extractors map[string]Extractor
	image      *ImageResolver
}

var _ Dispatcher = (*Registry)(nil)

func NewRegistry(cfg Config) *Registry {
	cfg.defaults()

	fetcher := NewFetcher()
	image := NewImageResolver(fetcher, cfg.Vision, cfg.OCR, cfg.StageTimeout)

	textExtractor := &TextExtractor{fetcher: fetcher}

	return &Registry{
		extractors: map[string]Extractor{
			"application/pdf": &PDFExtractor{fetcher: fetcher},
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": &DocxExtractor{fetcher: fetcher},
			"application/msword": &LegacyDocExtractor{fetcher: fetcher},
			"text/plain":         textExtractor,
			"text/markdown":      textExtractor,
		},
		image: image,
	}
}

// ExtractorFor resolves a declared content type. Parameters (charset etc.) are
// stripped before lookup.
func (r *Registry) ExtractorFor(contentType string) (Extractor, error) {
	normalized := normalizeContentType(contentType)

	if strings.HasPrefix(normalized, "image/") {
		return r.image, nil
	}

	if extractor, ok := r.extractors[normalized]; ok {
		return extractor, nil
	}
	return nil, &UnsupportedFormatError{DeclaredType: contentType}
}

func normalizeContentType(contentType string) string {
	if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
