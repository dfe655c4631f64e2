package bootstrap

import (
	"log"
	"os"
	"path/filepath"

	"bevgenie-be/internal/config"
	"bevgenie-be/internal/controller"
	"bevgenie-be/internal/pkg/logger"
	"bevgenie-be/internal/repository/memory"
	"bevgenie-be/internal/repository/unitofwork"
	"bevgenie-be/internal/service"
	"bevgenie-be/pkg/embedding"
	"bevgenie-be/pkg/knowledge"
	"bevgenie-be/pkg/llm/gemini"
	"bevgenie-be/pkg/pagegen"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController         controller.IChatController
	PresentationController controller.IPresentationController
	AdminController        controller.IAdminController

	// Background services, started by main
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	llmProvider := gemini.NewProviderWithModel(cfg.Keys.GoogleGemini, cfg.Ai.ChatModel)
	embeddingProvider := embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	log.Printf("[INFO] Using LLM model: %s", cfg.Ai.ChatModel)

	// 4. In-memory session storage
	sessionRepo := memory.NewSessionRepository()

	// 5. Domain components
	pipelineLogger := initPipelineLogger()
	retriever := knowledge.NewRetriever(embeddingProvider, uowFactory, pipelineLogger)
	orchestrator := pagegen.NewOrchestrator(llmProvider, retriever, pipelineLogger, cfg.Ai.SynthesisModel)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.App.SignalTopicName, pubSub)
	analyticsLogger := logger.NewIsolatedLogger(cfg.App.AnalyticsLogPath)
	consumerService := service.NewConsumerService(pubSub, cfg.App.SignalTopicName, uowFactory, analyticsLogger)

	chatService := service.NewChatService(
		uowFactory,
		llmProvider,
		sessionRepo,
		orchestrator,
		publisherService,
		sysLogger,
	)
	presentationService := service.NewPresentationService(uowFactory, sessionRepo)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	// 7. Controllers
	return &Container{
		ChatController:         controller.NewChatController(chatService),
		PresentationController: controller.NewPresentationController(presentationService),
		AdminController:        controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}

func initPipelineLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "pagegen.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[PAGEGEN] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
