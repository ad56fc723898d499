package extract

import (
	"context"
	"strings"
)

// TextExtractor handles text/plain and text/markdown attachments.
type TextExtractor struct {
	fetcher *Fetcher
}

func (e *TextExtractor) Extract(ctx context.Context, ref AttachmentReference) (*ExtractedContent, error) {
	data, err := e.fetcher.Fetch(ctx, ref.URL)
	if err != nil {
		return nil, err
	}

	// An empty buffer is a valid (empty) document, not an error.
	text := strings.TrimSpace(string(data))

	return &ExtractedContent{
		SourceFile: ref.Name,
		Text:       text,
		Success:    true,
		Metadata: &Metadata{
			Kind:              KindText,
			WordCount:         countWords(text),
			OriginalSizeBytes: ref.Size,
		},
	}, nil
}

func countWords(text string) int {
	return len(strings.Fields(text))
}
