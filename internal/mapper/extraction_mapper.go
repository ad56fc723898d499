package mapper

import (
	"ai-docchat-be/internal/dto"
	"ai-docchat-be/pkg/extract"
)

// ToAttachmentReferences converts request file DTOs into pipeline references.
func ToAttachmentReferences(files []dto.FileDTO) []extract.AttachmentReference {
	refs := make([]extract.AttachmentReference, len(files))
	for i, f := range files {
		refs[i] = extract.AttachmentReference{
			Name: f.Name,
			URL:  f.URL,
			Type: f.Type,
			Size: f.Size,
		}
	}
	return refs
}

// ToExtractedContentDTOs pairs each result record with its source reference.
// Both slices are index-aligned by the orchestrator's ordering contract.
func ToExtractedContentDTOs(refs []extract.AttachmentReference, results []extract.ExtractedContent) []dto.ExtractedContentDTO {
	out := make([]dto.ExtractedContentDTO, len(results))
	for i, result := range results {
		item := dto.ExtractedContentDTO{
			FileName: result.SourceFile,
			Content:  result.Text,
			Error:    result.ErrorReason,
			Success:  result.Success,
		}
		if i < len(refs) {
			item.FileType = refs[i].Type
			item.FileSize = refs[i].Size
		}
		if result.Metadata != nil {
			item.Metadata = &dto.ExtractionMetadataDTO{
				Kind:              result.Metadata.Kind,
				PageCount:         result.Metadata.PageCount,
				WordCount:         result.Metadata.WordCount,
				Confidence:        result.Metadata.Confidence,
				ProcessingMethod:  result.Metadata.ProcessingMethod,
				OriginalSizeBytes: result.Metadata.OriginalSizeBytes,
			}
		}
		out[i] = item
	}
	return out
}
