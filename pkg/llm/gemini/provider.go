package gemini

import (
	"context"
	"fmt"
	"strings"

	"ai-docchat-be/pkg/llm"

	genai "google.golang.org/genai"
)

// GeminiProvider is a thin wrapper around the official genai client.
// System-role messages are folded into the request's system instruction;
// the rest of the history maps onto user/model contents.
type GeminiProvider struct {
	cli          *genai.Client
	defaultModel string
}

var _ llm.LLMProvider = (*GeminiProvider)(nil)

func NewGeminiProvider(ctx context.Context, apiKey, defaultModel string) (*GeminiProvider, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiProvider{cli: cli, defaultModel: defaultModel}, nil
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(options)
	}

	var systemParts []string
	var contents []*genai.Content

	for _, msg := range history {
		switch msg.Role {
		case "system":
			systemParts = append(systemParts, msg.Content)
		case "assistant", "model":
			contents = append(contents, &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		}
	}

	config := &genai.GenerateContentConfig{
		Temperature: f32ptr(options.Temperature),
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}
	if options.TopP > 0 {
		config.TopP = f32ptr(options.TopP)
	}
	if options.FrequencyPenalty != 0 {
		config.FrequencyPenalty = f32ptr(options.FrequencyPenalty)
	}
	if options.PresencePenalty != 0 {
		config.PresencePenalty = f32ptr(options.PresencePenalty)
	}
	if len(systemParts) > 0 {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: strings.Join(systemParts, "\n\n")}},
		}
	}

	model := g.defaultModel
	if options.Model != "" {
		model = options.Model
	}

	resp, err := g.cli.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response contained no candidates")
	}

	return joinTextParts(resp.Candidates[0].Content.Parts), nil
}

// joinTextParts concatenates a candidate's text. The answer may arrive split
// across several parts.
func joinTextParts(parts []*genai.Part) string {
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func f32ptr(v float64) *float32 {
	f := float32(v)
	return &f
}
