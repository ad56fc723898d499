package dto

type ChatMessageDTO struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type FileDTO struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required"`
	Type string `json:"type" validate:"required"`
	Size int64  `json:"size"`
}

type ChatRequest struct {
	Messages []ChatMessageDTO `json:"messages" validate:"required,min=1,dive"`
	Files    []FileDTO        `json:"files,omitempty" validate:"max=10,dive"`
	Mode     string           `json:"mode,omitempty"` // "standard" | "research" | "analysis"
}

type PerformanceDTO struct {
	TotalTime      int64 `json:"total_time"`
	AuthTime       int64 `json:"auth_time"`
	MessageTime    int64 `json:"message_time"`
	GenerationTime int64 `json:"generation_time"`
}

type ChatResponse struct {
	Content               string          `json:"content"`
	FilesProcessed        int             `json:"files_processed"`
	SuccessfulExtractions int             `json:"successful_extractions"`
	Mode                  string          `json:"mode,omitempty"`
	Performance           *PerformanceDTO `json:"performance,omitempty"`
}
