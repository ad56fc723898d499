package chat

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ai-docchat-be/internal/constant"
	"ai-docchat-be/pkg/extract"
	"ai-docchat-be/pkg/llm"
)

// TruncationMarker is appended to any file block cut at the character ceiling.
const TruncationMarker = "\n\n[Content truncated due to length]"

// DefaultMaxFileChars is the per-file character ceiling in the file-context block.
const DefaultMaxFileChars = 10000

// Assembler builds the ordered message sequence handed to the generation
// capability: base instructions, optional mode directive, a single truncated
// file-context block, then conversation history in original order.
type Assembler struct {
	maxFileChars int
}

func NewAssembler(maxFileChars int) *Assembler {
	if maxFileChars <= 0 {
		maxFileChars = DefaultMaxFileChars
	}
	return &Assembler{maxFileChars: maxFileChars}
}

// Assemble produces the generation context. The result always begins with
// exactly one system entry; the file-context entry, when present, is a single
// user-role message placed before the history.
func (a *Assembler) Assemble(mode Mode, files []extract.ExtractedContent, history []llm.Message) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+3)

	messages = append(messages, llm.Message{
		Role:    constant.ChatRoleSystem,
		Content: constant.BaseSystemInstructionsV2,
	})

	if directive := directiveFor(mode); directive != "" {
		messages = append(messages, llm.Message{
			Role:    constant.ChatRoleSystem,
			Content: directive,
		})
	}

	if fileContext := a.buildFileContext(files); fileContext != "" {
		messages = append(messages, llm.Message{
			Role:    constant.ChatRoleUser,
			Content: fileContext,
		})
	}

	messages = append(messages, history...)
	return messages
}

func directiveFor(mode Mode) string {
	switch mode {
	case ModeResearch:
		return constant.ResearchModeDirective
	case ModeAnalysis:
		return constant.AnalysisModeDirective
	default:
		return ""
	}
}

// buildFileContext concatenates qualifying extractions into one labeled
// block. Files that failed, or succeeded with no readable text, are skipped;
// if nothing qualifies the result is empty and no message is emitted.
func (a *Assembler) buildFileContext(files []extract.ExtractedContent) string {
	var blocks []string
	for _, file := range files {
		text := strings.TrimSpace(file.Text)
		if !file.Success || text == "" {
			continue
		}

		// The ceiling counts characters, so cut on a rune boundary.
		if utf8.RuneCountInString(text) > a.maxFileChars {
			text = string([]rune(text)[:a.maxFileChars]) + TruncationMarker
		}

		blocks = append(blocks, fmt.Sprintf("File: %s (%s)\n%s", file.SourceFile, annotate(file.Metadata), text))
	}

	if len(blocks) == 0 {
		return ""
	}

	return "The user has attached the following files:\n\n" + strings.Join(blocks, "\n\n---\n\n")
}

// annotate derives a short human-readable tag from extraction metadata.
func annotate(meta *extract.Metadata) string {
	if meta == nil {
		return "attachment"
	}

	parts := []string{meta.Kind}
	if meta.PageCount > 0 {
		parts = append(parts, fmt.Sprintf("%d pages", meta.PageCount))
	}
	if meta.WordCount > 0 {
		parts = append(parts, fmt.Sprintf("%d words", meta.WordCount))
	}
	if meta.ProcessingMethod != "" {
		parts = append(parts, meta.ProcessingMethod)
	}
	return strings.Join(parts, ", ")
}
