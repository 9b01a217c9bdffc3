package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"ventures-chat-be/internal/constant"
	"ventures-chat-be/internal/dto"
	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/mapper"
	"ventures-chat-be/internal/pkg/logger"
	"ventures-chat-be/internal/repository/specification"
	"ventures-chat-be/internal/repository/unitofwork"
	"ventures-chat-be/pkg/backend"
	"ventures-chat-be/pkg/correlation"
	"ventures-chat-be/pkg/events"
	pktNats "ventures-chat-be/pkg/nats"

	"github.com/cenkalti/backoff/v5"
)

// ISessionService is the reconciliation surface between the AI backend's
// in-memory sessions and the locally persisted ones.
type ISessionService interface {
	Create(ctx context.Context, request *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetStatus(ctx context.Context, sessionID string) (*dto.SessionStatusResponse, error)
	EnsureLocal(ctx context.Context, sessionID string, external *backend.SessionState) (*dto.BridgeSessionResponse, error)
	SyncFields(ctx context.Context, request *dto.SyncDataRequest) (*dto.SyncDataResponse, error)
	Reset(ctx context.Context, sessionID string) (*dto.ResetSessionResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	backend    backend.Provider
	linker     *correlation.Linker
	natsPub    *pktNats.Publisher
	logger     logger.ILogger

	// Per-session locks so concurrent sync-data calls for the same session
	// serialize instead of clobbering each other's merge. Entries are never
	// evicted; one small entry per session id for the process lifetime.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	backendProvider backend.Provider,
	linker *correlation.Linker,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		backend:    backendProvider,
		linker:     linker,
		natsPub:    natsPub,
		logger:     sysLogger,
		locks:      make(map[string]*sync.Mutex),
	}
}

func (s *sessionService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[sessionID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[sessionID] = l
	return l
}

// writeWithRetry runs one store write under a bounded exponential backoff.
// Exhaustion surfaces as a typed StoreWriteError.
func (s *sessionService) writeWithRetry(ctx context.Context, op string, write func() error) error {
	operation := func() (struct{}, error) {
		return struct{}{}, write()
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(3),
	)
	if err != nil {
		return &StoreWriteError{Op: op, Err: err}
	}
	return nil
}

func (s *sessionService) Create(ctx context.Context, request *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserSessionRepository()

	existing, err := repo.FindOne(ctx, specification.BySessionID{SessionID: request.SessionId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return sessionToResponse(existing), nil
	}

	phase := request.Phase
	if phase == "" {
		phase = constant.SessionPhaseWelcome
	}

	session := &entity.UserSession{
		SessionId:      request.SessionId,
		Phase:          phase,
		CompletionRate: 0,
	}
	if err := s.writeWithRetry(ctx, "create session", func() error {
		return repo.Create(ctx, session)
	}); err != nil {
		return nil, err
	}

	return sessionToResponse(session), nil
}

func (s *sessionService) GetStatus(ctx context.Context, sessionID string) (*dto.SessionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.UserSessionRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	messageCount, err := uow.SessionMessageRepository().Count(ctx, specification.BySessionID{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	return &dto.SessionStatusResponse{
		SessionId:       session.SessionId,
		Phase:           session.Phase,
		CompletionRate:  session.CompletionRate,
		DatabaseFields:  databaseFields(session),
		MissingRequired: missingRequired(session),
		MessageCount:    messageCount,
	}, nil
}

// EnsureLocal bridges a backend-side session into the local store. The
// external state is optional; when nil it is fetched from the backend.
func (s *sessionService) EnsureLocal(ctx context.Context, sessionID string, external *backend.SessionState) (*dto.BridgeSessionResponse, error) {
	if sessionID == "" {
		return nil, ErrMissingData
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserSessionRepository()

	existing, err := repo.FindOne(ctx, specification.BySessionID{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.BridgeSessionResponse{
			SessionId: sessionID,
			Status:    constant.SyncStatusExists,
			Session:   sessionToResponse(existing),
		}, nil
	}

	if external == nil {
		external, err = s.backend.GetSession(ctx, sessionID)
		if err != nil {
			if errors.Is(err, backend.ErrSessionNotFound) {
				return nil, ErrSessionNotFound
			}
			return nil, err
		}
	}

	session := sessionFromExternal(sessionID, external)
	if err := s.writeWithRetry(ctx, "bridge session", func() error {
		return repo.Create(ctx, session)
	}); err != nil {
		// The session keeps living on the backend; the bridge can be
		// retried on the next touch point.
		s.logger.Warn("session", "bridge persist failed, session stays backend-only", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return &dto.BridgeSessionResponse{
			SessionId: sessionID,
			Status:    constant.SyncStatusBackendOnly,
		}, nil
	}

	s.publishSynced(ctx, sessionID, constant.SyncStatusSynced)
	return &dto.BridgeSessionResponse{
		SessionId: sessionID,
		Status:    constant.SyncStatusSynced,
		Session:   sessionToResponse(session),
	}, nil
}

// SyncFields merges a field payload from the backend into the local
// session. Non-null incoming values win; absent fields are untouched; an
// empty diff skips the write entirely.
func (s *sessionService) SyncFields(ctx context.Context, request *dto.SyncDataRequest) (*dto.SyncDataResponse, error) {
	if request.SessionId == "" {
		return nil, ErrMissingData
	}

	lock := s.sessionLock(request.SessionId)
	lock.Lock()
	defer lock.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserSessionRepository()

	session, err := repo.FindOne(ctx, specification.BySessionID{SessionID: request.SessionId})
	if err != nil {
		return nil, err
	}

	if session == nil {
		// Nothing local and nothing to create it from: a bare session id
		// is not a session.
		if !hasAnyField(request) {
			return nil, ErrSessionNotFound
		}
		session = &entity.UserSession{
			SessionId:      request.SessionId,
			Phase:          constant.SessionPhaseWelcome,
			CompletionRate: 0,
		}
		applyFields(session, request)
		if err := s.writeWithRetry(ctx, "sync create", func() error {
			return repo.Create(ctx, session)
		}); err != nil {
			return nil, err
		}
		s.publishSynced(ctx, request.SessionId, constant.SyncStatusCreated)
		return &dto.SyncDataResponse{
			SessionId: request.SessionId,
			Status:    constant.SyncStatusCreated,
			Session:   sessionToResponse(session),
		}, nil
	}

	if !applyFields(session, request) {
		return &dto.SyncDataResponse{
			SessionId: request.SessionId,
			Status:    constant.SyncStatusNoChanges,
			Session:   sessionToResponse(session),
		}, nil
	}

	if err := s.writeWithRetry(ctx, "sync update", func() error {
		return repo.Update(ctx, session)
	}); err != nil {
		return nil, err
	}

	s.publishSynced(ctx, request.SessionId, constant.SyncStatusUpdated)
	return &dto.SyncDataResponse{
		SessionId: request.SessionId,
		Status:    constant.SyncStatusUpdated,
		Session:   sessionToResponse(session),
	}, nil
}

// Reset wipes the session's conversation and invalidates pending
// correlation state so stale retries cannot attach citations to the next
// conversation's messages.
func (s *sessionService) Reset(ctx context.Context, sessionID string) (*dto.ResetSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.UserSessionRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	deleted, err := uow.SessionMessageRepository().Count(ctx, specification.BySessionID{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := uow.MessageCitationRepository().DeleteBySessionID(ctx, sessionID); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.SessionMessageRepository().DeleteBySessionID(ctx, sessionID); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.linker.Reset()
	s.logger.Info("session", "conversation reset", map[string]interface{}{
		"session_id":       sessionID,
		"messages_deleted": deleted,
	})

	return &dto.ResetSessionResponse{
		SessionId:       sessionID,
		MessagesDeleted: deleted,
	}, nil
}

func (s *sessionService) publishSynced(ctx context.Context, sessionID, status string) {
	if s.natsPub == nil {
		return
	}
	if err := s.natsPub.Publish(ctx, events.NewSessionSyncedEvent(sessionID, status)); err != nil {
		s.logger.Warn("session", "failed to publish sync event", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}

// sessionFromExternal builds a local session from the backend's state,
// translating backend vocabulary into the local enums.
func sessionFromExternal(sessionID string, external *backend.SessionState) *entity.UserSession {
	phase := external.Phase
	if phase == "" {
		phase = constant.SessionPhaseWelcome
	}
	return &entity.UserSession{
		SessionId:         sessionID,
		Phase:             phase,
		CompletionRate:    external.CompletionRate,
		UserName:          external.UserName,
		UserEmail:         external.UserEmail,
		UserRole:          mapper.MapRolePtr(external.UserRole),
		SchoolAffiliation: mapper.MapSchoolAffiliationPtr(external.SchoolAffiliation),
		VentureStage:      mapper.MapVentureStagePtr(external.VentureStage),
		PrimaryNeed:       external.PrimaryNeed,
		UrgencyLevel:      external.UrgencyLevel,
		Department:        external.Department,
		StartupStage:      mapper.MapVentureStagePtr(external.StartupStage),
	}
}

// hasAnyField reports whether the payload carries at least one recognized
// field value.
func hasAnyField(request *dto.SyncDataRequest) bool {
	return request.Phase != nil ||
		request.CompletionRate != nil ||
		request.UserName != nil ||
		request.UserEmail != nil ||
		request.UserRole != nil ||
		request.SchoolAffiliation != nil ||
		request.VentureStage != nil ||
		request.PrimaryNeed != nil ||
		request.UrgencyLevel != nil ||
		request.Department != nil ||
		request.StartupStage != nil
}

// applyFields merges non-null incoming values into the session and reports
// whether anything actually changed.
func applyFields(session *entity.UserSession, request *dto.SyncDataRequest) bool {
	changed := false

	if request.Phase != nil && *request.Phase != session.Phase {
		session.Phase = *request.Phase
		changed = true
	}
	if request.CompletionRate != nil && *request.CompletionRate != session.CompletionRate {
		session.CompletionRate = *request.CompletionRate
		changed = true
	}

	changed = mergeField(&session.UserName, request.UserName) || changed
	changed = mergeField(&session.UserEmail, request.UserEmail) || changed
	changed = mergeField(&session.UserRole, mapper.MapRolePtr(request.UserRole)) || changed
	changed = mergeField(&session.SchoolAffiliation, mapper.MapSchoolAffiliationPtr(request.SchoolAffiliation)) || changed
	changed = mergeField(&session.VentureStage, mapper.MapVentureStagePtr(request.VentureStage)) || changed
	changed = mergeField(&session.PrimaryNeed, request.PrimaryNeed) || changed
	changed = mergeField(&session.UrgencyLevel, request.UrgencyLevel) || changed
	changed = mergeField(&session.Department, request.Department) || changed
	changed = mergeField(&session.StartupStage, mapper.MapVentureStagePtr(request.StartupStage)) || changed

	return changed
}

func mergeField(current **string, incoming *string) bool {
	if incoming == nil {
		return false
	}
	if *current != nil && **current == *incoming {
		return false
	}
	value := *incoming
	*current = &value
	return true
}

func sessionToResponse(session *entity.UserSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionId:         session.SessionId,
		Phase:             session.Phase,
		CompletionRate:    session.CompletionRate,
		UserName:          session.UserName,
		UserEmail:         session.UserEmail,
		UserRole:          session.UserRole,
		SchoolAffiliation: session.SchoolAffiliation,
		VentureStage:      session.VentureStage,
		PrimaryNeed:       session.PrimaryNeed,
		UrgencyLevel:      session.UrgencyLevel,
		Department:        session.Department,
		StartupStage:      session.StartupStage,
		LastActivity:      session.LastActivity,
		CreatedAt:         session.CreatedAt,
	}
}

func databaseFields(session *entity.UserSession) map[string]interface{} {
	fields := map[string]interface{}{
		"user_name":          session.UserName,
		"user_email":         session.UserEmail,
		"user_role":          session.UserRole,
		"school_affiliation": session.SchoolAffiliation,
		"venture_stage":      session.VentureStage,
		"primary_need":       session.PrimaryNeed,
		"urgency_level":      session.UrgencyLevel,
		"department":         session.Department,
		"startup_stage":      session.StartupStage,
	}
	return fields
}

func missingRequired(session *entity.UserSession) []string {
	missing := []string{}
	if session.UserName == nil {
		missing = append(missing, "user_name")
	}
	if session.UserEmail == nil {
		missing = append(missing, "user_email")
	}
	if session.UserRole == nil {
		missing = append(missing, "user_role")
	}
	return missing
}
