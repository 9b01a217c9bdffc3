package service

import (
	"context"
	"testing"
	"time"

	"ventures-chat-be/internal/dto"
	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/repository/memory"
	"ventures-chat-be/pkg/backend"
	"ventures-chat-be/pkg/correlation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture(be backend.Provider) (IChatService, *fakeFactory, *memory.BindingRepository) {
	factory := newFakeFactory()
	store := memory.NewBindingRepository()
	policy := correlation.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	linker := correlation.NewLinker(store, NewMessageSource(factory), policy, nopLogger{})
	sessionSvc := NewSessionService(factory, be, linker, nil, nopLogger{})
	chatSvc := NewChatService(factory, be, store, linker, sessionSvc, nopLogger{})
	return chatSvc, factory, store
}

func rawCitation(rank int, doc, content, url string) map[string]interface{} {
	c := map[string]interface{}{
		"rank":     rank,
		"document": doc,
		"content":  content,
	}
	if url != "" {
		c["metadata"] = map[string]interface{}{"source_url": url}
	}
	return c
}

func TestSendChatPersistsBothSides(t *testing.T) {
	be := &fakeBackend{
		chatResult: &backend.ChatResult{
			Response: "Funding options include the venture fund [1].",
			Citations: []interface{}{
				rawCitation(1, "Fund Guide", "The venture fund backs student teams.", "https://x.test/fund"),
			},
		},
		session: &backend.SessionState{SessionID: "sess-1"},
	}
	svc, factory, _ := newChatFixture(be)

	res, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: "sess-1",
		Message:   "How do I get funding?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Funding options include the venture fund [1].", res.Response)
	require.Len(t, res.Citations, 1)
	assert.Equal(t, []int{1}, res.Citations[0].OriginalRanks)

	history, err := svc.GetHistory(context.Background(), "sess-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "assistant", history[1].Role)
	assert.Equal(t, 1, history[1].CitationCount)

	// Citation rows landed in the store too.
	uow := factory.NewUnitOfWork(context.Background())
	rows, err := uow.MessageCitationRepository().FindAllByMessageIDs(context.Background(), []uuid.UUID{res.MessageId})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fund Guide", rows[0].Document)
}

func TestSendChatConsolidatesSameSource(t *testing.T) {
	be := &fakeBackend{
		chatResult: &backend.ChatResult{
			Response: "See the fund guide [1][2].",
			Citations: []interface{}{
				rawCitation(1, "Fund Guide", "Part one.", "https://x.test/fund"),
				rawCitation(2, "Fund Guide", "Part two.", "https://x.test/fund"),
				rawCitation(3, "Mentor Network", "Mentors meet weekly.", "https://x.test/mentors"),
			},
		},
		session: &backend.SessionState{SessionID: "sess-1"},
	}
	svc, _, _ := newChatFixture(be)

	res, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: "sess-1",
		Message:   "funding?",
	})
	require.NoError(t, err)
	require.Len(t, res.Citations, 2)
	assert.Equal(t, []int{1, 2}, res.Citations[0].OriginalRanks)
	assert.Equal(t, 2, res.Citations[0].MemberCount)
	assert.Equal(t, []int{3}, res.Citations[1].OriginalRanks)
}

func TestGetCitationsFromStagingStore(t *testing.T) {
	be := &fakeBackend{
		chatResult: &backend.ChatResult{
			Response: "The answer cites one source [1].",
			Citations: []interface{}{
				rawCitation(1, "Fund Guide", "Details.", "https://x.test/fund"),
			},
		},
		session: &backend.SessionState{SessionID: "sess-1"},
	}
	svc, _, _ := newChatFixture(be)

	sent, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: "sess-1",
		Message:   "q",
	})
	require.NoError(t, err)

	res, err := svc.GetCitations(context.Background(), sent.MessageId)
	require.NoError(t, err)
	require.Len(t, res.Citations, 1)
	assert.Equal(t, "Fund Guide", res.Citations[0].Document)
}

func TestGetCitationsFallsBackToDatabase(t *testing.T) {
	// Message and citation rows exist in the store but the staging cache
	// knows nothing about them, as after a cache expiry or restart.
	svc, factory, _ := newChatFixture(&fakeBackend{})

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	msg := newTestMessage("sess-1", "assistant", "The answer cites one source [1].")
	require.NoError(t, uow.SessionMessageRepository().Create(ctx, msg))
	require.NoError(t, uow.MessageCitationRepository().CreateBulk(ctx, []*entity.MessageCitation{
		{
			MessageId:      msg.Id,
			Rank:           1,
			Document:       "Fund Guide",
			RelevanceScore: 0.9,
			Content:        "Details.",
			Metadata:       map[string]interface{}{"source_url": "https://x.test/fund"},
		},
	}))

	res, err := svc.GetCitations(ctx, msg.Id)
	require.NoError(t, err)
	require.Len(t, res.Citations, 1)
	assert.Equal(t, "Fund Guide", res.Citations[0].Document)
	assert.Equal(t, []int{1}, res.Citations[0].OriginalRanks)
}

func TestGetCitationsUnknownMessage(t *testing.T) {
	svc, _, _ := newChatFixture(&fakeBackend{})

	_, err := svc.GetCitations(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestSendChatBackendFailure(t *testing.T) {
	be := &fakeBackend{chatErr: assert.AnError}
	svc, factory, _ := newChatFixture(be)

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: "sess-1",
		Message:   "q",
	})
	require.Error(t, err)

	// Nothing persisted on failure.
	uow := factory.NewUnitOfWork(context.Background())
	count, err := uow.SessionMessageRepository().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
