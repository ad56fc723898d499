package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"ai-docchat-be/pkg/ocr"
	"ai-docchat-be/pkg/vision"
)

// ImageResolver resolves image attachments through a three-stage fallback:
// vision description, then optical character recognition, then a metadata-only
// description. The final stage cannot fail, so the resolver never returns an
// error - every image yields a successful record of some fidelity.
//
// Each stage runs under its own timeout; a timed-out stage falls through
// exactly like a failed one.
type ImageResolver struct {
	fetcher      *Fetcher
	vision       vision.Provider
	ocr          ocr.Provider
	stageTimeout time.Duration
}

var _ Extractor = (*ImageResolver)(nil)

func NewImageResolver(fetcher *Fetcher, visionProvider vision.Provider, ocrProvider ocr.Provider, stageTimeout time.Duration) *ImageResolver {
	return &ImageResolver{
		fetcher:      fetcher,
		vision:       visionProvider,
		ocr:          ocrProvider,
		stageTimeout: stageTimeout,
	}
}

func (r *ImageResolver) Extract(ctx context.Context, ref AttachmentReference) (*ExtractedContent, error) {
	mimeType := normalizeContentType(ref.Type)

	// Both vision and OCR consume raw bytes; fetch once up front. A failed
	// fetch skips straight to the metadata-only description.
	data, fetchErr := r.fetchBounded(ctx, ref.URL)

	if fetchErr == nil && r.vision != nil {
		if record := r.tryVision(ctx, ref, data, mimeType); record != nil {
			return record, nil
		}
	}

	if fetchErr == nil && r.ocr != nil {
		if record := r.tryOCR(ctx, ref, data, mimeType); record != nil {
			return record, nil
		}
	}

	return r.basicDescription(ref), nil
}

func (r *ImageResolver) fetchBounded(ctx context.Context, location string) ([]byte, error) {
	stageCtx, cancel := context.WithTimeout(ctx, r.stageTimeout)
	defer cancel()
	return r.fetcher.Fetch(stageCtx, location)
}

// tryVision runs the vision stage. A nil return means fall through.
func (r *ImageResolver) tryVision(ctx context.Context, ref AttachmentReference, data []byte, mimeType string) *ExtractedContent {
	stageCtx, cancel := context.WithTimeout(ctx, r.stageTimeout)
	defer cancel()

	description, err := r.vision.Describe(stageCtx, data, mimeType)
	if err != nil || strings.TrimSpace(description) == "" {
		return nil
	}

	description = strings.TrimSpace(description)
	return &ExtractedContent{
		SourceFile: ref.Name,
		Text:       description,
		Success:    true,
		Metadata: &Metadata{
			Kind:              KindImage,
			WordCount:         countWords(description),
			ProcessingMethod:  MethodVisionSuccess,
			OriginalSizeBytes: ref.Size,
		},
	}
}

// tryOCR runs the OCR stage. OCR succeeding with no text is a terminal
// outcome, not a fall-through: the image was readable, it just holds no text.
func (r *ImageResolver) tryOCR(ctx context.Context, ref AttachmentReference, data []byte, mimeType string) *ExtractedContent {
	stageCtx, cancel := context.WithTimeout(ctx, r.stageTimeout)
	defer cancel()

	result, err := r.ocr.Recognize(stageCtx, data, mimeType)
	if err != nil {
		return nil
	}

	if result.Text == "" {
		return &ExtractedContent{
			SourceFile: ref.Name,
			Text:       "",
			Success:    true,
			Metadata: &Metadata{
				Kind:              KindImage,
				Confidence:        result.Confidence,
				ProcessingMethod:  MethodOCRNoTextFound,
				OriginalSizeBytes: ref.Size,
			},
		}
	}

	return &ExtractedContent{
		SourceFile: ref.Name,
		Text:       result.Text,
		Success:    true,
		Metadata: &Metadata{
			Kind:              KindImage,
			WordCount:         countWords(result.Text),
			Confidence:        result.Confidence,
			ProcessingMethod:  MethodOCRSuccess,
			OriginalSizeBytes: ref.Size,
		},
	}
}

// basicDescription synthesizes content from what the reference alone tells us.
func (r *ImageResolver) basicDescription(ref AttachmentReference) *ExtractedContent {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(ref.Name)), ".")
	if ext == "" {
		ext = "unknown"
	}

	description := fmt.Sprintf("Image file %q (%s format, %s). No visual analysis was available for this image.",
		ref.Name, ext, formatSize(ref.Size))

	return &ExtractedContent{
		SourceFile: ref.Name,
		Text:       description,
		Success:    true,
		Metadata: &Metadata{
			Kind:              KindImage,
			WordCount:         countWords(description),
			ProcessingMethod:  MethodBasicInfoOnly,
			OriginalSizeBytes: ref.Size,
		},
	}
}

func formatSize(size int64) string {
	switch {
	case size >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	case size >= 1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}
