package ocr

import "context"

// Result is what optical character recognition produced for one image.
// Empty Text with a nil error means the image genuinely contains no readable
// text - callers must treat that differently from a failure.
type Result struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Provider runs OCR against image bytes. A nil provider skips the OCR stage.
type Provider interface {
	Recognize(ctx context.Context, data []byte, mimeType string) (*Result, error)
}
