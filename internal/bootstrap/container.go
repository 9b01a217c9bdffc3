package bootstrap

import (
	"context"
	"log"

	"ventures-chat-be/internal/config"
	"ventures-chat-be/internal/controller"
	"ventures-chat-be/internal/pkg/logger"
	"ventures-chat-be/internal/pkg/mailer"
	"ventures-chat-be/internal/repository/memory"
	"ventures-chat-be/internal/repository/unitofwork"
	"ventures-chat-be/internal/service"
	"ventures-chat-be/pkg/backend"
	"ventures-chat-be/pkg/correlation"

	pktNats "ventures-chat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController    controller.ISessionController
	ChatController       controller.IChatController
	FeedbackController   controller.IFeedbackController
	ExtractionController controller.IExtractionController
	AdminController      controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.TeamEmail,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (caches the AI backend's session representations)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// AI backend client
	backendClient := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.APIKey, rdb)

	// 3. Correlation machinery
	bindingRepo := memory.NewBindingRepository()
	messageSource := service.NewMessageSource(uowFactory)
	linker := correlation.NewLinker(bindingRepo, messageSource, correlation.DefaultRetryPolicy(), sysLogger)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Topics.ExtractionTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Topics.ExtractionTopic, uowFactory)

	sessionService := service.NewSessionService(uowFactory, backendClient, linker, natsPub, sysLogger)
	chatService := service.NewChatService(uowFactory, backendClient, bindingRepo, linker, sessionService, sysLogger)
	feedbackService := service.NewFeedbackService(uowFactory, sessionService, emailService, natsPub, sysLogger)
	extractionService := service.NewExtractionService(uowFactory, publisherService, sysLogger)
	adminService := service.NewAdminService(uowFactory, bindingRepo, sysLogger)

	// 5. Controllers
	return &Container{
		SessionController:    controller.NewSessionController(sessionService),
		ChatController:       controller.NewChatController(chatService),
		FeedbackController:   controller.NewFeedbackController(feedbackService),
		ExtractionController: controller.NewExtractionController(extractionService),
		AdminController:      controller.NewAdminController(adminService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
