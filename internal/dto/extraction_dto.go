package dto

type ExtractionRequest struct {
	Files []FileDTO `json:"files" validate:"required,min=1,dive"`
}

type ExtractionMetadataDTO struct {
	Kind              string  `json:"kind"`
	PageCount         int     `json:"page_count,omitempty"`
	WordCount         int     `json:"word_count,omitempty"`
	Confidence        float64 `json:"confidence,omitempty"`
	ProcessingMethod  string  `json:"processing_method,omitempty"`
	OriginalSizeBytes int64   `json:"original_size_bytes,omitempty"`
}

type ExtractedContentDTO struct {
	FileName string                 `json:"file_name"`
	FileType string                 `json:"file_type"`
	FileSize int64                  `json:"file_size"`
	Content  string                 `json:"content"`
	Metadata *ExtractionMetadataDTO `json:"metadata,omitempty"`
	Error    string                 `json:"error,omitempty"`
	Success  bool                   `json:"success"`
}

type ExtractionResponse struct {
	Success           bool                  `json:"success"`
	FilesProcessed    int                   `json:"files_processed"`
	ExtractedContents []ExtractedContentDTO `json:"extracted_contents"`
}
