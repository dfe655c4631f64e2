package service

import (
	"context"
	"encoding/json"

	"bevgenie-be/internal/dto"
	"bevgenie-be/internal/entity"
	"bevgenie-be/internal/pkg/logger"
	"bevgenie-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the signal-event topic into the audit table. It
// runs for the lifetime of the process; the chat path never waits on it.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SignalEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("analytics", "Failed to unmarshal signal event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads never become processable, drop them
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	event := &entity.SignalEvent{
		Id:               uuid.New(),
		SessionId:        payload.SessionId,
		Vector:           payload.Vector,
		Value:            payload.Value,
		Strength:         payload.Strength,
		ConfidenceBefore: payload.ConfidenceBefore,
		ConfidenceAfter:  payload.ConfidenceAfter,
		Evidence:         payload.Evidence,
		Source:           payload.Source,
		CreatedAt:        payload.OccurredAt,
	}

	if err := uow.SignalEventRepository().CreateBulk(ctx, []*entity.SignalEvent{event}); err != nil {
		cs.logger.Error("analytics", "Failed to persist signal event", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
		msg.Nack() // retriable, the broker redelivers
		return
	}

	msg.Ack()
}
