package extract

import (
	"errors"
	"testing"
)

func TestRegistryDispatch(t *testing.T) {
	registry := NewRegistry(Config{})

	tests := []struct {
		name        string
		contentType string
		wantType    string
		wantErr     bool
	}{
		{
			name:        "pdf",
			contentType: "application/pdf",
			wantType:    "*extract.PDFExtractor",
		},
		{
			name:        "docx",
			contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			wantType:    "*extract.DocxExtractor",
		},
		{
			name:        "legacy doc",
			contentType: "application/msword",
			wantType:    "*extract.LegacyDocExtractor",
		},
		{
			name:        "plain text",
			contentType: "text/plain",
			wantType:    "*extract.TextExtractor",
		},
		{
			name:        "markdown",
			contentType: "text/markdown",
			wantType:    "*extract.TextExtractor",
		},
		{
			name:        "png routes to image resolver",
			contentType: "image/png",
			wantType:    "*extract.ImageResolver",
		},
		{
			name:        "any image subtype routes to image resolver",
			contentType: "image/x-obscure-format",
			wantType:    "*extract.ImageResolver",
		},
		{
			name:        "charset parameter is stripped",
			contentType: "text/plain; charset=utf-8",
			wantType:    "*extract.TextExtractor",
		},
		{
			name:        "lookup is case insensitive",
			contentType: "IMAGE/JPEG",
			wantType:    "*extract.ImageResolver",
		},
		{
			name:        "video is unsupported",
			contentType: "video/mp4",
			wantErr:     true,
		},
		{
			name:        "empty type is unsupported",
			contentType: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor, err := registry.ExtractorFor(tt.contentType)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractorFor(%q) = %T, want error", tt.contentType, extractor)
				}
				var unsupported *UnsupportedFormatError
				if !errors.As(err, &unsupported) {
					t.Fatalf("error = %v, want UnsupportedFormatError", err)
				}
				if unsupported.DeclaredType != tt.contentType {
					t.Errorf("DeclaredType = %q, want %q", unsupported.DeclaredType, tt.contentType)
				}
				return
			}

			if err != nil {
				t.Fatalf("ExtractorFor(%q) error: %v", tt.contentType, err)
			}
			if got := typeName(extractor); got != tt.wantType {
				t.Errorf("ExtractorFor(%q) = %s, want %s", tt.contentType, got, tt.wantType)
			}
		})
	}
}

func typeName(e Extractor) string {
	switch e.(type) {
	case *PDFExtractor:
		return "*extract.PDFExtractor"
	case *DocxExtractor:
		return "*extract.DocxExtractor"
	case *LegacyDocExtractor:
		return "*extract.LegacyDocExtractor"
	case *TextExtractor:
		return "*extract.TextExtractor"
	case *ImageResolver:
		return "*extract.ImageResolver"
	default:
		return "unknown"
	}
}

func TestNormalizeContentType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"application/pdf", "application/pdf"},
		{"text/plain; charset=utf-8", "text/plain"},
		{"  Image/PNG  ", "image/png"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeContentType(tt.in); got != tt.want {
			t.Errorf("normalizeContentType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFailureRecordInvariant(t *testing.T) {
	ref := AttachmentReference{Name: "broken.pdf", Type: "application/pdf"}
	record := Failure(ref, "could not parse document")

	if record.Success {
		t.Error("failed record reports Success=true")
	}
	if record.Text != "" {
		t.Errorf("failed record carries text: %q", record.Text)
	}
	if record.ErrorReason == "" {
		t.Error("failed record has no reason")
	}
	if record.SourceFile != "broken.pdf" {
		t.Errorf("SourceFile = %q, want broken.pdf", record.SourceFile)
	}
}
