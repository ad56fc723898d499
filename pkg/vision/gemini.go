package vision

import (
	"context"
	"fmt"
	"strings"

	"ai-docchat-be/internal/constant"

	genai "google.golang.org/genai"
)

// GeminiProvider submits images to Gemini as inline encoded bytes with a
// fixed analytical prompt.
type GeminiProvider struct {
	cli   *genai.Client
	model string
}

var _ Provider = (*GeminiProvider)(nil)

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiProvider{cli: cli, model: model}, nil
}

func (p *GeminiProvider) Describe(ctx context.Context, data []byte, mimeType string) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
			{Text: constant.VisionAnalysisPrompt},
		},
	}}

	resp, err := p.cli.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("vision request: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("vision response contained no candidates")
	}

	description := strings.TrimSpace(joinTextParts(resp.Candidates[0].Content.Parts))
	if description == "" {
		return "", fmt.Errorf("vision response was empty")
	}
	return description, nil
}

// joinTextParts concatenates a candidate's text. Descriptions may arrive
// split across several parts.
func joinTextParts(parts []*genai.Part) string {
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}
