package gemini

import (
	"testing"

	genai "google.golang.org/genai"
)

func TestJoinTextParts(t *testing.T) {
	tests := []struct {
		name  string
		parts []*genai.Part
		want  string
	}{
		{
			name:  "single part",
			parts: []*genai.Part{{Text: "complete answer"}},
			want:  "complete answer",
		},
		{
			name: "split across parts",
			parts: []*genai.Part{
				{Text: "first half, "},
				{Text: "second half"},
			},
			want: "first half, second half",
		},
		{
			name: "non-text parts contribute nothing",
			parts: []*genai.Part{
				{Text: "before"},
				{InlineData: &genai.Blob{MIMEType: "image/png"}},
				{Text: " after"},
			},
			want: "before after",
		},
		{
			name:  "no parts",
			parts: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinTextParts(tt.parts); got != tt.want {
				t.Errorf("joinTextParts = %q, want %q", got, tt.want)
			}
		})
	}
}
