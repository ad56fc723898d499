package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestTextExtractor(t *testing.T) {
	extractor := &TextExtractor{fetcher: NewFetcher()}

	t.Run("plain document", func(t *testing.T) {
		path := writeTempFile(t, "notes.txt", []byte("  hello from the document\nsecond line  "))
		ref := AttachmentReference{Name: "notes.txt", URL: path, Type: "text/plain", Size: 40}

		record, err := extractor.Extract(context.Background(), ref)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}

		if !record.Success {
			t.Error("Success = false")
		}
		if record.Text != "hello from the document\nsecond line" {
			t.Errorf("Text = %q", record.Text)
		}
		if record.Metadata.Kind != KindText {
			t.Errorf("Kind = %q, want %q", record.Metadata.Kind, KindText)
		}
		if record.Metadata.WordCount != 6 {
			t.Errorf("WordCount = %d, want 6", record.Metadata.WordCount)
		}
	})

	t.Run("empty file is a valid empty document", func(t *testing.T) {
		path := writeTempFile(t, "empty.txt", nil)
		ref := AttachmentReference{Name: "empty.txt", URL: path, Type: "text/plain"}

		record, err := extractor.Extract(context.Background(), ref)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if !record.Success {
			t.Error("Success = false for empty file")
		}
		if record.Text != "" {
			t.Errorf("Text = %q, want empty", record.Text)
		}
	})

	t.Run("missing file is a fetch error", func(t *testing.T) {
		ref := AttachmentReference{Name: "gone.txt", URL: "/nonexistent/gone.txt", Type: "text/plain"}

		_, err := extractor.Extract(context.Background(), ref)
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			t.Fatalf("error = %v, want FetchError", err)
		}
	})
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"two  words", 2},
		{"line\nbreaks\tand tabs", 4},
	}

	for _, tt := range tests {
		if got := countWords(tt.in); got != tt.want {
			t.Errorf("countWords(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
