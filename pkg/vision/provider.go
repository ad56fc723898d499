package vision

import "context"

// Provider describes an image in natural language. Swappable without touching
// the extraction pipeline; a nil provider means the vision stage is skipped.
type Provider interface {
	// Describe returns an analytical description of the image bytes.
	Describe(ctx context.Context, data []byte, mimeType string) (string, error)
}
