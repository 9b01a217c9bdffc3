package service

import (
	"context"

	"ventures-chat-be/internal/dto"
	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/pkg/logger"
	"ventures-chat-be/internal/pkg/mailer"
	"ventures-chat-be/internal/repository/unitofwork"
	"ventures-chat-be/pkg/events"
	pktNats "ventures-chat-be/pkg/nats"

	"github.com/google/uuid"
)

type IFeedbackService interface {
	Submit(ctx context.Context, request *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error)
}

type feedbackService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionService ISessionService
	emailService   mailer.IEmailService
	natsPub        *pktNats.Publisher
	logger         logger.ILogger
}

func NewFeedbackService(
	uowFactory unitofwork.RepositoryFactory,
	sessionService ISessionService,
	emailService mailer.IEmailService,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) IFeedbackService {
	return &feedbackService{
		uowFactory:     uowFactory,
		sessionService: sessionService,
		emailService:   emailService,
		natsPub:        natsPub,
		logger:         sysLogger,
	}
}

// Submit persists feedback. The session link is opportunistic: if the
// referenced session cannot be bridged the row is stored without one
// rather than rejecting the user's input.
func (fs *feedbackService) Submit(ctx context.Context, request *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error) {
	var sessionID *string
	if request.SessionId != "" {
		if _, err := fs.sessionService.EnsureLocal(ctx, request.SessionId, nil); err != nil {
			fs.logger.Warn("feedback", "session bridge failed, storing feedback unlinked", map[string]interface{}{
				"session_id": request.SessionId,
				"error":      err.Error(),
			})
		} else {
			sessionID = &request.SessionId
		}
	}

	feedback := &entity.Feedback{
		Id:        uuid.New(),
		SessionId: sessionID,
		Rating:    request.Rating,
		Category:  request.Category,
		Comment:   request.Comment,
	}

	uow := fs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.FeedbackRepository().Create(ctx, feedback); err != nil {
		return nil, err
	}

	if fs.natsPub != nil {
		evt := events.NewFeedbackReceivedEvent(request.SessionId, request.Rating, request.Category)
		if err := fs.natsPub.Publish(ctx, evt); err != nil {
			fs.logger.Warn("feedback", "failed to publish feedback event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if fs.emailService != nil {
		go func() {
			if err := fs.emailService.SendFeedbackAlert(request.SessionId, request.Rating, request.Category, request.Comment); err != nil {
				fs.logger.Warn("feedback", "feedback alert email failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}()
	}

	return &dto.SubmitFeedbackResponse{
		Id:        feedback.Id,
		CreatedAt: feedback.CreatedAt,
	}, nil
}
