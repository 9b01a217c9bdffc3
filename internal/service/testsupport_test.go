package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/pkg/logger"
	"ventures-chat-be/internal/repository/contract"
	"ventures-chat-be/internal/repository/specification"
	"ventures-chat-be/internal/repository/unitofwork"
	"ventures-chat-be/pkg/backend"

	"github.com/google/uuid"
)

// In-memory repository doubles. Specifications are interpreted by type
// switch; only the ones the services actually use are supported.

type fakeState struct {
	mu        sync.Mutex
	sessions  []*entity.UserSession
	messages  []*entity.SessionMessage
	citations []*entity.MessageCitation
	feedback  []*entity.Feedback
	extracted []*entity.ExtractedData

	failSessionWrites bool
}

type fakeFactory struct {
	state *fakeState
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{state: &fakeState{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{state: f.state}
}

type fakeUow struct {
	state *fakeState
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserSessionRepository() contract.UserSessionRepository {
	return &fakeSessionRepo{state: u.state}
}

func (u *fakeUow) SessionMessageRepository() contract.SessionMessageRepository {
	return &fakeMessageRepo{state: u.state}
}

func (u *fakeUow) MessageCitationRepository() contract.MessageCitationRepository {
	return &fakeCitationRepo{state: u.state}
}

func (u *fakeUow) FeedbackRepository() contract.FeedbackRepository {
	return &fakeFeedbackRepo{state: u.state}
}

func (u *fakeUow) ExtractedDataRepository() contract.ExtractedDataRepository {
	return &fakeExtractedRepo{state: u.state}
}

func sessionIDFilter(specs []specification.Specification) (string, bool) {
	for _, s := range specs {
		if f, ok := s.(specification.BySessionID); ok {
			return f.SessionID, true
		}
	}
	return "", false
}

type fakeSessionRepo struct {
	state *fakeState
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.UserSession) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if r.state.failSessionWrites {
		return errors.New("simulated write failure")
	}
	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	session.CreatedAt = time.Now()
	copied := *session
	r.state.sessions = append(r.state.sessions, &copied)
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.UserSession) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if r.state.failSessionWrites {
		return errors.New("simulated write failure")
	}
	for i, existing := range r.state.sessions {
		if existing.SessionId == session.SessionId {
			copied := *session
			r.state.sessions[i] = &copied
			return nil
		}
	}
	return errors.New("session not found")
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSession, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	id, _ := sessionIDFilter(specs)
	for _, s := range r.state.sessions {
		if s.SessionId == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSession, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]*entity.UserSession, len(r.state.sessions))
	copy(out, r.state.sessions)
	return out, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return int64(len(r.state.sessions)), nil
}

type fakeMessageRepo struct {
	state *fakeState
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.SessionMessage) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	message.CreatedAt = time.Now()
	copied := *message
	r.state.messages = append(r.state.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionMessage, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, s := range specs {
		if f, ok := s.(specification.ByID); ok {
			for _, m := range r.state.messages {
				if m.Id == f.ID {
					copied := *m
					return &copied, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionMessage, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	id, filtered := sessionIDFilter(specs)
	var out []*entity.SessionMessage
	for _, m := range r.state.messages {
		if !filtered || m.SessionId == id {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	rows, err := r.FindAll(ctx, specs...)
	return int64(len(rows)), err
}

func (r *fakeMessageRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	var kept []*entity.SessionMessage
	for _, m := range r.state.messages {
		if m.SessionId != sessionID {
			kept = append(kept, m)
		}
	}
	r.state.messages = kept
	return nil
}

type fakeCitationRepo struct {
	state *fakeState
}

func (r *fakeCitationRepo) CreateBulk(ctx context.Context, citations []*entity.MessageCitation) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, c := range citations {
		if c.Id == uuid.Nil {
			c.Id = uuid.New()
		}
		copied := *c
		r.state.citations = append(r.state.citations, &copied)
	}
	return nil
}

func (r *fakeCitationRepo) FindAllByMessageIDs(ctx context.Context, messageIDs []uuid.UUID) ([]*entity.MessageCitation, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	var out []*entity.MessageCitation
	for _, c := range r.state.citations {
		for _, id := range messageIDs {
			if c.MessageId == id {
				copied := *c
				out = append(out, &copied)
			}
		}
	}
	return out, nil
}

func (r *fakeCitationRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	return nil
}

type fakeFeedbackRepo struct {
	state *fakeState
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, feedback *entity.Feedback) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if feedback.Id == uuid.Nil {
		feedback.Id = uuid.New()
	}
	feedback.CreatedAt = time.Now()
	copied := *feedback
	r.state.feedback = append(r.state.feedback, &copied)
	return nil
}

func (r *fakeFeedbackRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]*entity.Feedback, len(r.state.feedback))
	copy(out, r.state.feedback)
	return out, nil
}

func (r *fakeFeedbackRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return int64(len(r.state.feedback)), nil
}

type fakeExtractedRepo struct {
	state *fakeState
}

func (r *fakeExtractedRepo) Create(ctx context.Context, data *entity.ExtractedData) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if data.Id == uuid.Nil {
		data.Id = uuid.New()
	}
	data.ExtractedAt = time.Now()
	copied := *data
	r.state.extracted = append(r.state.extracted, &copied)
	return nil
}

func (r *fakeExtractedRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExtractedData, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	id, filtered := sessionIDFilter(specs)
	var out []*entity.ExtractedData
	for _, d := range r.state.extracted {
		if !filtered || d.SessionId == id {
			copied := *d
			out = append(out, &copied)
		}
	}
	return out, nil
}

// fakeBackend scripts the AI backend.
type fakeBackend struct {
	chatResult *backend.ChatResult
	chatErr    error
	session    *backend.SessionState
	sessionErr error
}

func (b *fakeBackend) Chat(ctx context.Context, sessionID, message string) (*backend.ChatResult, error) {
	if b.chatErr != nil {
		return nil, b.chatErr
	}
	return b.chatResult, nil
}

func (b *fakeBackend) GetSession(ctx context.Context, sessionID string) (*backend.SessionState, error) {
	if b.sessionErr != nil {
		return nil, b.sessionErr
	}
	if b.session == nil {
		return nil, backend.ErrSessionNotFound
	}
	return b.session, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

func strPtr(s string) *string { return &s }

func newTestMessage(sessionID, role, content string) *entity.SessionMessage {
	return &entity.SessionMessage{
		SessionId: sessionID,
		Role:      role,
		Content:   content,
	}
}
