package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/pkg/logger"
	"oguso-digital-be/internal/pkg/mailer"
	"oguso-digital-be/internal/websocket"
)

// INotifierService consumes contact submissions off the in-process bus
// and fans them out: an email to the site owner and a push to connected
// admin dashboards.
type INotifierService interface {
	Consume(ctx context.Context) error
}

type notifierService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	hub          *websocket.Hub
	log          logger.ILogger
}

func NewNotifierService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	hub *websocket.Hub,
	log logger.ILogger,
) INotifierService {
	return &notifierService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		hub:          hub,
		log:          log,
	}
}

func (ns *notifierService) Consume(ctx context.Context) error {
	messages, err := ns.pubSub.Subscribe(ctx, ns.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ns.processMessage(msg)
		}
	}()

	return nil
}

func (ns *notifierService) processMessage(msg *message.Message) {
	var contact entity.ContactMessage
	if err := json.Unmarshal(msg.Payload, &contact); err != nil {
		ns.log.Error("NotifierService", "Failed to unmarshal contact message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads would retry forever
		return
	}

	if err := ns.emailService.SendContactNotification(&contact); err != nil {
		ns.log.Error("NotifierService", "Failed to send contact notification email", map[string]interface{}{
			"message_id": contact.Id.String(),
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	if ns.hub != nil {
		ns.hub.Broadcast(dto.AdminNotification{
			Type: "contact_received",
			Payload: map[string]interface{}{
				"message_id": contact.Id.String(),
				"name":       contact.Name,
				"email":      contact.Email,
				"company":    contact.Company,
			},
			OccurredAt: contact.CreatedAt,
		})
	}

	msg.Ack()
}
