package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-docchat-be/internal/config"
	"ai-docchat-be/internal/controller"
	"ai-docchat-be/internal/pkg/logger"
	"ai-docchat-be/internal/repository/implementation"
	"ai-docchat-be/internal/repository/memory"
	"ai-docchat-be/internal/service"
	"ai-docchat-be/pkg/chat"
	"ai-docchat-be/pkg/extract"
	"ai-docchat-be/pkg/llm"
	"ai-docchat-be/pkg/llm/factory"
	"ai-docchat-be/pkg/ocr"
	"ai-docchat-be/pkg/vision"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const extractionTopic = "extraction.completed"

type Container struct {
	// Controllers
	ChatController       controller.IChatController
	ExtractionController controller.IExtractionController
	HealthController     controller.IHealthController

	// Background Services (Exposed for main.go to run)
	AuditConsumerService service.IAuditConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	// Generation provider may be nil when no credential is configured; the
	// chat service reports that as a configuration error per request so the
	// extraction endpoint keeps working.
	var llmProvider llm.LLMProvider
	provider, err := factory.NewLLMProvider(
		context.Background(),
		cfg.Ai.LLMProvider,
		cfg.Ai.ModelFast,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Printf("[WARN] LLM Provider unavailable: %v", err)
	} else {
		llmProvider = provider
		log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.LLMProvider)
	}

	var visionProvider vision.Provider
	if cfg.Keys.GoogleGemini != "" {
		vp, err := vision.NewGeminiProvider(context.Background(), cfg.Keys.GoogleGemini, cfg.Ai.ModelFast)
		if err != nil {
			log.Printf("[WARN] Vision Provider unavailable: %v", err)
		} else {
			visionProvider = vp
			log.Printf("[INFO] Using Vision Provider: GEMINI (%s)", cfg.Ai.ModelFast)
		}
	}

	var ocrProvider ocr.Provider
	if cfg.Ai.OCRBaseURL != "" {
		ocrProvider = ocr.NewHTTPClient(cfg.Ai.OCRBaseURL)
		log.Printf("[INFO] Using OCR Provider: %s", cfg.Ai.OCRBaseURL)
	}

	// 4. Extraction Pipeline
	registry := extract.NewRegistry(extract.Config{
		Vision:       visionProvider,
		OCR:          ocrProvider,
		StageTimeout: cfg.Extraction.StageTimeout,
	})

	publisherService := service.NewPublisherService(extractionTopic, pubSub)
	auditConsumerService := service.NewAuditConsumerService(pubSub, extractionTopic, sysLogger)

	extractionService := service.NewExtractionService(
		registry,
		publisherService,
		sysLogger,
		cfg.Extraction.BatchTimeout,
		cfg.Extraction.Concurrency,
	)

	// 5. Identity
	userRepo := implementation.NewUserRepository(db)
	identityCache := memory.NewIdentityCache(5 * time.Minute)
	identityService := service.NewIdentityService(userRepo, identityCache)

	// 6. Chat
	assembler := chat.NewAssembler(cfg.Extraction.MaxFileChars)
	chatService := service.NewChatService(
		identityService,
		extractionService,
		llmProvider,
		assembler,
		service.ModelTiers{
			Fast:     cfg.Ai.ModelFast,
			Advanced: cfg.Ai.ModelAdvanced,
		},
		sysLogger,
	)

	return &Container{
		ChatController:       controller.NewChatController(chatService),
		ExtractionController: controller.NewExtractionController(extractionService),
		HealthController:     controller.NewHealthController(),

		AuditConsumerService: auditConsumerService,
	}
}
