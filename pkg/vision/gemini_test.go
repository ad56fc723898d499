package vision

import (
	"testing"

	genai "google.golang.org/genai"
)

func TestJoinTextParts(t *testing.T) {
	parts := []*genai.Part{
		{Text: "A diagram of "},
		{Text: "the deployment pipeline."},
	}

	if got := joinTextParts(parts); got != "A diagram of the deployment pipeline." {
		t.Errorf("joinTextParts = %q", got)
	}

	if got := joinTextParts(nil); got != "" {
		t.Errorf("joinTextParts(nil) = %q, want empty", got)
	}
}
