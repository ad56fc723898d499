package chat

import (
	"strings"
	"testing"
	"unicode/utf8"

	"ai-docchat-be/internal/constant"
	"ai-docchat-be/pkg/extract"
	"ai-docchat-be/pkg/llm"
)

func historyFixture() []llm.Message {
	return []llm.Message{
		{Role: constant.ChatRoleUser, Content: "What does the report conclude?"},
		{Role: constant.ChatRoleAssistant, Content: "Let me check."},
		{Role: constant.ChatRoleUser, Content: "Please summarize it."},
	}
}

func TestAssembleStandardMode(t *testing.T) {
	assembler := NewAssembler(0)
	history := historyFixture()

	messages := assembler.Assemble(ModeStandard, nil, history)

	if len(messages) != len(history)+1 {
		t.Fatalf("len = %d, want %d", len(messages), len(history)+1)
	}
	if messages[0].Role != constant.ChatRoleSystem {
		t.Errorf("first role = %q, want system", messages[0].Role)
	}
	if messages[0].Content != constant.BaseSystemInstructionsV2 {
		t.Error("first entry is not the base instructions")
	}
	for i, m := range messages[1:] {
		if m != history[i] {
			t.Errorf("history entry %d = %+v, want %+v", i, m, history[i])
		}
	}
}

func TestAssembleModeDirective(t *testing.T) {
	assembler := NewAssembler(0)

	tests := []struct {
		mode      Mode
		directive string
	}{
		{ModeResearch, constant.ResearchModeDirective},
		{ModeAnalysis, constant.AnalysisModeDirective},
	}

	for _, tt := range tests {
		messages := assembler.Assemble(tt.mode, nil, historyFixture())

		if messages[1].Role != constant.ChatRoleSystem {
			t.Errorf("%s: second role = %q, want system", tt.mode, messages[1].Role)
		}
		if messages[1].Content != tt.directive {
			t.Errorf("%s: second entry is not the mode directive", tt.mode)
		}
	}
}

func TestAssembleFileContext(t *testing.T) {
	assembler := NewAssembler(0)
	files := []extract.ExtractedContent{
		{
			SourceFile: "report.pdf",
			Text:       "Revenue grew 12 percent.",
			Success:    true,
			Metadata:   &extract.Metadata{Kind: extract.KindPDF, PageCount: 3, WordCount: 4},
		},
		{
			SourceFile:  "broken.docx",
			Success:     false,
			ErrorReason: "could not parse",
		},
		{
			SourceFile: "blank.png",
			Text:       "",
			Success:    true,
			Metadata:   &extract.Metadata{Kind: extract.KindImage, ProcessingMethod: extract.MethodOCRNoTextFound},
		},
		{
			SourceFile: "notes.txt",
			Text:       "Follow up with the vendor.",
			Success:    true,
			Metadata:   &extract.Metadata{Kind: extract.KindText, WordCount: 5},
		},
	}

	messages := assembler.Assemble(ModeStandard, files, historyFixture())

	// base system + one file-context user message + 3 history entries
	if len(messages) != 5 {
		t.Fatalf("len = %d, want 5", len(messages))
	}

	fileMsg := messages[1]
	if fileMsg.Role != constant.ChatRoleUser {
		t.Errorf("file-context role = %q, want user", fileMsg.Role)
	}
	if !strings.HasPrefix(fileMsg.Content, "The user has attached the following files:") {
		t.Errorf("file-context prefix missing: %q", fileMsg.Content[:40])
	}
	if !strings.Contains(fileMsg.Content, "File: report.pdf (pdf, 3 pages, 4 words)") {
		t.Errorf("pdf block missing or mislabeled:\n%s", fileMsg.Content)
	}
	if !strings.Contains(fileMsg.Content, "Follow up with the vendor.") {
		t.Error("text block missing")
	}
	if strings.Contains(fileMsg.Content, "broken.docx") {
		t.Error("failed file leaked into the context")
	}
	if strings.Contains(fileMsg.Content, "blank.png") {
		t.Error("empty-text file leaked into the context")
	}
	if strings.Count(fileMsg.Content, "\n\n---\n\n") != 1 {
		t.Error("two qualifying files must be joined by exactly one separator")
	}
}

func TestAssembleNoQualifyingFiles(t *testing.T) {
	assembler := NewAssembler(0)
	files := []extract.ExtractedContent{
		{SourceFile: "bad.pdf", Success: false, ErrorReason: "parse failure"},
	}

	messages := assembler.Assemble(ModeStandard, files, historyFixture())

	if len(messages) != 4 {
		t.Fatalf("len = %d, want 4 (no file-context message)", len(messages))
	}
	for _, m := range messages {
		if strings.Contains(m.Content, "attached the following files") {
			t.Error("file-context message emitted with nothing to attach")
		}
	}
}

func TestAssembleTruncation(t *testing.T) {
	assembler := NewAssembler(100)
	long := strings.Repeat("a", 150)
	files := []extract.ExtractedContent{
		{SourceFile: "big.txt", Text: long, Success: true, Metadata: &extract.Metadata{Kind: extract.KindText}},
	}

	messages := assembler.Assemble(ModeStandard, files, historyFixture())
	content := messages[1].Content

	if !strings.Contains(content, TruncationMarker) {
		t.Fatal("truncation marker missing")
	}
	if strings.Contains(content, strings.Repeat("a", 101)) {
		t.Error("more than maxFileChars of file text survived")
	}
	if !strings.Contains(content, strings.Repeat("a", 100)) {
		t.Error("truncated text shorter than the ceiling")
	}
}

func TestAssembleTruncationCountsCharacters(t *testing.T) {
	// A multi-byte rune straddling the ceiling must not be split, and the
	// ceiling counts characters, not bytes.
	assembler := NewAssembler(100)
	text := strings.Repeat("a", 99) + "世界"
	files := []extract.ExtractedContent{
		{SourceFile: "cjk.txt", Text: text, Success: true, Metadata: &extract.Metadata{Kind: extract.KindText}},
	}

	messages := assembler.Assemble(ModeStandard, files, historyFixture())
	content := messages[1].Content

	if !utf8.ValidString(content) {
		t.Fatal("file-context block contains invalid UTF-8 after truncation")
	}
	if !strings.Contains(content, TruncationMarker) {
		t.Fatal("truncation marker missing")
	}
	if !strings.Contains(content, strings.Repeat("a", 99)+"世") {
		t.Error("truncated text must keep exactly 100 characters")
	}
	if strings.Contains(content, "界") {
		t.Error("character past the ceiling survived")
	}

	// A file of exactly 100 multi-byte characters stays untouched.
	exact := strings.Repeat("界", 100)
	messages = assembler.Assemble(ModeStandard, []extract.ExtractedContent{
		{SourceFile: "exact.txt", Text: exact, Success: true, Metadata: &extract.Metadata{Kind: extract.KindText}},
	}, historyFixture())

	if strings.Contains(messages[1].Content, TruncationMarker) {
		t.Error("file at the ceiling must not be truncated")
	}
	if !strings.Contains(messages[1].Content, exact) {
		t.Error("untruncated text altered")
	}
}

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name string
		meta *extract.Metadata
		want string
	}{
		{"nil metadata", nil, "attachment"},
		{"kind only", &extract.Metadata{Kind: "docx"}, "docx"},
		{
			"image with method",
			&extract.Metadata{Kind: "image", WordCount: 12, ProcessingMethod: extract.MethodVisionSuccess},
			"image, 12 words, vision_api_success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := annotate(tt.meta); got != tt.want {
				t.Errorf("annotate = %q, want %q", got, tt.want)
			}
		})
	}
}
