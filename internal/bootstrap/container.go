package bootstrap

import (
	"context"
	"log"

	"oguso-digital-be/internal/config"
	"oguso-digital-be/internal/controller"
	"oguso-digital-be/internal/pkg/logger"
	"oguso-digital-be/internal/pkg/mailer"
	"oguso-digital-be/internal/repository/memory"
	"oguso-digital-be/internal/repository/unitofwork"
	"oguso-digital-be/internal/service"
	"oguso-digital-be/internal/websocket"

	pkgNats "oguso-digital-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	ChatController         controller.IChatController
	DocumentController     controller.IDocumentController
	SettingsController     controller.ISettingsController
	ContentController      controller.IContentController
	AdminController        controller.IAdminController
	NotificationController controller.INotificationController

	// Background services (exposed for main.go to run)
	NotifierService service.INotifierService

	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(&cfg.SMTP)
	settingsCache := memory.NewSettingsCache()

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis
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
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	authService := service.NewAuthService(uowFactory, emailService, natsPub, cfg, sysLogger)
	settingsService := service.NewSettingsService(uowFactory, settingsCache)
	chatService := service.NewChatService(uowFactory, settingsService, nil, cfg.Ai.OpenAIBaseURL, sysLogger)
	documentService := service.NewDocumentService(
		uowFactory,
		settingsService,
		nil,
		natsPub,
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.EmbeddingModel,
		sysLogger,
	)
	contentService := service.NewContentService(uowFactory)
	contactService := service.NewContactService(uowFactory, pubSub, cfg.App.ContactTopicName, natsPub, sysLogger)
	notifierService := service.NewNotifierService(pubSub, cfg.App.ContactTopicName, emailService, wsHub, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		ChatController:         controller.NewChatController(chatService, cfg.Auth.JwtSecret),
		DocumentController:     controller.NewDocumentController(documentService, cfg.Auth.JwtSecret),
		SettingsController:     controller.NewSettingsController(settingsService, cfg.Auth.JwtSecret),
		ContentController:      controller.NewContentController(contentService, contactService),
		AdminController:        controller.NewAdminController(contentService, contactService, cfg.Auth.JwtSecret),
		NotificationController: controller.NewNotificationController(wsHub, cfg.Auth.JwtSecret),

		NotifierService: notifierService,
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
	}
}
