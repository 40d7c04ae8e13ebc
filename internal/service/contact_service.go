package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"oguso-digital-be/internal/dto"
	"oguso-digital-be/internal/entity"
	"oguso-digital-be/internal/pkg/logger"
	"oguso-digital-be/internal/pkg/serverutils"
	"oguso-digital-be/internal/repository/specification"
	"oguso-digital-be/internal/repository/unitofwork"
	"oguso-digital-be/pkg/events"
	pkgNats "oguso-digital-be/pkg/nats"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
	ListMessages(ctx context.Context) ([]dto.ContactMessageResponse, error)
}

type contactService struct {
	uowFactory     unitofwork.RepositoryFactory
	publisher      message.Publisher
	topic          string
	eventPublisher *pkgNats.Publisher
	log            logger.ILogger
}

func NewContactService(
	uowFactory unitofwork.RepositoryFactory,
	publisher message.Publisher,
	topic string,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IContactService {
	return &contactService{
		uowFactory:     uowFactory,
		publisher:      publisher,
		topic:          topic,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	msg := &entity.ContactMessage{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContactMessageRepository().Create(ctx, msg); err != nil {
		return nil, serverutils.NewDependency("failed to store contact message", err)
	}

	// Notification fan-out is asynchronous; a bus failure never fails
	// the submission.
	if s.publisher != nil {
		payload, err := json.Marshal(msg)
		if err == nil {
			err = s.publisher.Publish(s.topic, message.NewMessage(watermill.NewUUID(), payload))
		}
		if err != nil {
			s.log.Warn("ContactService", "Failed to publish contact event", map[string]interface{}{
				"message_id": msg.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		event := events.NewContactReceivedEvent(msg.Id.String(), msg.Name, msg.Email)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.log.Warn("ContactService", "Failed to publish audit event", map[string]interface{}{
				"message_id": msg.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	return &dto.ContactResponse{Id: msg.Id.String()}, nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]dto.ContactMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ContactMessageRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewDependency("failed to list contact messages", err)
	}

	resp := make([]dto.ContactMessageResponse, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, dto.ContactMessageResponse{
			Id:        msg.Id.String(),
			Name:      msg.Name,
			Email:     msg.Email,
			Company:   msg.Company,
			Message:   msg.Message,
			CreatedAt: msg.CreatedAt,
		})
	}
	return resp, nil
}
