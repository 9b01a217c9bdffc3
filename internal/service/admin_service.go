package service

import (
	"context"

	"ventures-chat-be/internal/dto"
	"ventures-chat-be/internal/pkg/logger"
	"ventures-chat-be/internal/repository/memory"
	"ventures-chat-be/internal/repository/unitofwork"
)

type IAdminService interface {
	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)
	Logs(level string, limit, offset int) ([]logger.LogEntry, error)
	LogById(id string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	bindings   *memory.BindingRepository
	logger     logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	bindings *memory.BindingRepository,
	sysLogger logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		bindings:   bindings,
		logger:     sysLogger,
	}
}

func (as *adminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.UserSessionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := uow.SessionMessageRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	feedback, err := uow.FeedbackRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	// Average completion rate is computed in memory; the session table is
	// small enough for the admin dashboard.
	rows, err := uow.UserSessionRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var avg float64
	if len(rows) > 0 {
		var sum float64
		for _, row := range rows {
			sum += row.CompletionRate
		}
		avg = sum / float64(len(rows))
	}

	return &dto.AdminStatsResponse{
		TotalSessions:     sessions,
		TotalMessages:     messages,
		TotalFeedback:     feedback,
		PendingLinks:      as.bindings.PendingCount(),
		AvgCompletionRate: avg,
	}, nil
}

func (as *adminService) Logs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return as.logger.GetLogs(level, limit, offset)
}

func (as *adminService) LogById(id string) (*logger.LogEntry, error) {
	return as.logger.GetLogById(id)
}
