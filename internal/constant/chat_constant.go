package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"

	// BaseSystemInstructionsV2 is the canonical system prompt. Always the first
	// entry of the assembled context.
	BaseSystemInstructionsV2 = `You are a knowledgeable assistant helping the user work with their documents and conversations.

When file content is provided:
- Base your answers strictly on the attached material
- Quote or reference the file name when citing content
- If the material does not contain what is being asked, say so honestly

Response principles:
1. Answer directly and naturally
2. Adapt your response style to what the question requires
3. Be complete - don't skip relevant information from the attached files
4. Keep the tone conversational and helpful`

	// ResearchModeDirective is appended as a second system entry when mode=research.
	ResearchModeDirective = `The user has selected research mode. Prioritize breadth and currency: cover multiple perspectives, note where information may be outdated or contested, and point out related areas worth exploring. Structure longer answers with clear sections.`

	// AnalysisModeDirective is appended as a second system entry when mode=analysis.
	AnalysisModeDirective = `The user has selected analysis mode. Prioritize comparison and recommendation: weigh the options present in the material, make trade-offs explicit, and close with a concrete recommendation and the reasoning behind it.`

	// VisionAnalysisPrompt is the fixed analytical prompt for the vision stage.
	VisionAnalysisPrompt = `Describe this image in detail. Include any visible text verbatim, the overall layout, charts or diagrams with their key values, and anything else a reader would need to understand the image without seeing it.`

	// LegacyDocAdvisory is returned as successful content when a legacy .doc
	// file cannot be parsed. Keeps the batch moving instead of failing.
	LegacyDocAdvisory = `This file is in the legacy .doc format and could not be fully parsed. Please save it as .docx or PDF and upload it again for complete text extraction.`

	// ExtractionFailedGeneric replaces per-file reasons when the whole batch
	// exceeds its outer timeout.
	ExtractionFailedGeneric = "failed to extract file content"
)
