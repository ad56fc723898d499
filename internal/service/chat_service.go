package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"ai-docchat-be/internal/dto"
	"ai-docchat-be/internal/mapper"
	"ai-docchat-be/internal/pkg/logger"
	"ai-docchat-be/internal/pkg/serverutils"
	"ai-docchat-be/pkg/chat"
	"ai-docchat-be/pkg/extract"
	"ai-docchat-be/pkg/llm"

	"github.com/google/uuid"
)

// ModelTiers maps the abstract mode tiers onto concrete model names.
type ModelTiers struct {
	Fast     string
	Advanced string
}

// IChatService is the request coordinator: identity + extraction run
// concurrently, then context assembly, then the generation call.
type IChatService interface {
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	identity    IIdentityService
	extraction  IExtractionService
	llmProvider llm.LLMProvider
	assembler   *chat.Assembler
	models      ModelTiers
	logger      logger.ILogger
}

func NewChatService(
	identity IIdentityService,
	extraction IExtractionService,
	llmProvider llm.LLMProvider,
	assembler *chat.Assembler,
	models ModelTiers,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		identity:    identity,
		extraction:  extraction,
		llmProvider: llmProvider,
		assembler:   assembler,
		models:      models,
		logger:      sysLogger,
	}
}

func (s *chatService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	started := time.Now()

	// A missing generation credential fails the request before any
	// extraction work starts.
	if s.llmProvider == nil {
		return nil, serverutils.NewConfigurationError("generation credential is not configured")
	}

	if len(req.Messages) == 0 {
		return nil, serverutils.NewValidationError("messages must not be empty")
	}

	// Identity lookup and attachment extraction are independent; run them
	// concurrently and wait for both.
	var (
		wg          sync.WaitGroup
		authTime    int64
		messageTime int64
		identityErr error
		results     []extract.ExtractedContent
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		authStart := time.Now()
		_, identityErr = s.identity.Resolve(ctx, userId)
		authTime = time.Since(authStart).Milliseconds()
	}()
	go func() {
		defer wg.Done()
		extractStart := time.Now()
		results = s.extraction.ExtractBatch(ctx, mapper.ToAttachmentReferences(req.Files))
		messageTime = time.Since(extractStart).Milliseconds()
	}()
	wg.Wait()

	if identityErr != nil {
		if errors.Is(identityErr, ErrAccountNotFound) {
			return nil, serverutils.NewAuthenticationError("unknown account")
		}
		return nil, identityErr
	}

	mode := chat.ResolveMode(req.Mode)
	modeCfg := chat.ConfigFor(mode)

	history := make([]llm.Message, len(req.Messages))
	for i, m := range req.Messages {
		history[i] = llm.Message{Role: m.Role, Content: m.Content}
	}
	messages := s.assembler.Assemble(mode, results, history)

	genStart := time.Now()
	content, err := s.llmProvider.Chat(ctx, messages,
		llm.WithModel(s.modelFor(modeCfg.ModelTier)),
		llm.WithTemperature(modeCfg.Temperature),
		llm.WithMaxTokens(modeCfg.MaxTokens),
		llm.WithTopP(modeCfg.TopP),
		llm.WithPenalties(modeCfg.FrequencyPenalty, modeCfg.PresencePenalty),
	)
	generationTime := time.Since(genStart).Milliseconds()

	if err != nil {
		s.logger.Error("chat", "Generation call failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, serverutils.NewUpstreamGenerationError(err.Error())
	}
	if strings.TrimSpace(content) == "" {
		return nil, serverutils.NewUpstreamGenerationError("generation returned an empty response")
	}

	successful := 0
	for _, r := range results {
		if r.Success && strings.TrimSpace(r.Text) != "" {
			successful++
		}
	}

	s.logger.Info("chat", "Chat completed", map[string]interface{}{
		"user_id":                userId.String(),
		"mode":                   string(mode),
		"files_processed":        len(results),
		"successful_extractions": successful,
		"total_ms":               time.Since(started).Milliseconds(),
	})

	return &dto.ChatResponse{
		Content:               content,
		FilesProcessed:        len(results),
		SuccessfulExtractions: successful,
		Mode:                  string(mode),
		Performance: &dto.PerformanceDTO{
			TotalTime:      time.Since(started).Milliseconds(),
			AuthTime:       authTime,
			MessageTime:    messageTime,
			GenerationTime: generationTime,
		},
	}, nil
}

func (s *chatService) modelFor(tier string) string {
	if tier == chat.TierAdvanced {
		return s.models.Advanced
	}
	return s.models.Fast
}
