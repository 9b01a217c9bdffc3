package service

import (
	"context"
	"encoding/json"
	"log"

	"ventures-chat-be/internal/dto"
	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the extraction topic and persists each payload.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
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
	var payload dto.StoreExtractedDataRequest
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal extraction message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.SessionId == "" || payload.Content == "" {
		log.Printf("[ERROR] Extraction message missing session_id or content")
		msg.Ack()
		return
	}

	record := &entity.ExtractedData{
		SessionId: payload.SessionId,
		DataType:  payload.DataType,
		Source:    payload.Source,
		Content:   payload.Content,
		Metadata:  payload.Metadata,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ExtractedDataRepository().Create(ctx, record); err != nil {
		log.Printf("[ERROR] Failed to persist extraction for session %s: %v", payload.SessionId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	log.Printf("[INFO] Stored extraction %s for session %s", payload.DataType, payload.SessionId)
	msg.Ack()
}
