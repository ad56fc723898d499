package extract

// AttachmentReference points at one uploaded file. Supplied by the caller and
// never mutated by the pipeline.
type AttachmentReference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// Metadata carries structural information about one extraction result.
type Metadata struct {
	Kind              string  `json:"kind"`
	PageCount         int     `json:"page_count,omitempty"`
	WordCount         int     `json:"word_count,omitempty"`
	Confidence        float64 `json:"confidence,omitempty"`
	ProcessingMethod  string  `json:"processing_method,omitempty"`
	OriginalSizeBytes int64   `json:"original_size_bytes,omitempty"`
}

// ExtractedContent is the per-file result record.
//
// Invariants: Success=false implies Text=="" and ErrorReason set.
// Success=true with empty Text only happens for images where OCR ran but found
// no readable text (ProcessingMethod=MethodOCRNoTextFound).
type ExtractedContent struct {
	SourceFile  string    `json:"source_file"`
	Text        string    `json:"text"`
	Success     bool      `json:"success"`
	ErrorReason string    `json:"error_reason,omitempty"`
	Metadata    *Metadata `json:"metadata,omitempty"`
}

// Processing methods recorded by the image cascade.
const (
	MethodVisionSuccess  = "vision_api_success"
	MethodOCRSuccess     = "ocr_success"
	MethodOCRNoTextFound = "ocr_no_text_found"
	MethodBasicInfoOnly  = "basic_info_only"
)

// Attachment kinds, one per extractor.
const (
	KindPDF       = "pdf"
	KindDocx      = "docx"
	KindLegacyDoc = "doc"
	KindText      = "text"
	KindImage     = "image"
)

// Failure creates a failed record for a reference, preserving the invariant
// that failed records carry no text.
func Failure(ref AttachmentReference, reason string) ExtractedContent {
	return ExtractedContent{
		SourceFile:  ref.Name,
		Success:     false,
		ErrorReason: reason,
	}
}
