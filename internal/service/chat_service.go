package service

import (
	"context"

	"ventures-chat-be/internal/constant"
	"ventures-chat-be/internal/dto"
	"ventures-chat-be/internal/entity"
	"ventures-chat-be/internal/pkg/logger"
	"ventures-chat-be/internal/repository/specification"
	"ventures-chat-be/internal/repository/unitofwork"
	"ventures-chat-be/pkg/backend"
	"ventures-chat-be/pkg/citations"
	"ventures-chat-be/pkg/correlation"

	"github.com/google/uuid"
)

type IChatService interface {
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, sessionID string, limit, offset int) ([]*dto.GetChatHistoryResponse, error)
	GetCitations(ctx context.Context, messageID uuid.UUID) (*dto.GetMessageCitationsResponse, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	backend        backend.Provider
	bindings       correlation.Store
	linker         *correlation.Linker
	sessionService ISessionService
	logger         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	backendProvider backend.Provider,
	bindings correlation.Store,
	linker *correlation.Linker,
	sessionService ISessionService,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		backend:        backendProvider,
		bindings:       bindings,
		linker:         linker,
		sessionService: sessionService,
		logger:         sysLogger,
	}
}

// SendChat runs one conversation turn: forward to the AI backend, persist
// both sides of the exchange, then stage the normalized citations for
// correlation. Citation work never fails the turn.
func (cs *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	// Make sure the session exists locally before we persist messages
	// against it. A bridge failure is tolerable; the messages still carry
	// the external session id.
	if _, err := cs.sessionService.EnsureLocal(ctx, request.SessionId, nil); err != nil {
		cs.logger.Warn("chat", "session bridge failed before chat turn", map[string]interface{}{
			"session_id": request.SessionId,
			"error":      err.Error(),
		})
	}

	result, err := cs.backend.Chat(ctx, request.SessionId, request.Message)
	if err != nil {
		return nil, err
	}

	normalized := citations.Normalize(result.Citations)
	groups := citations.Consolidate(normalized)

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	userMessage := &entity.SessionMessage{
		SessionId: request.SessionId,
		Role:      constant.MessageRoleUser,
		Content:   request.Message,
	}
	if err := uow.SessionMessageRepository().Create(ctx, userMessage); err != nil {
		uow.Rollback()
		return nil, err
	}

	assistantMessage := &entity.SessionMessage{
		SessionId:     request.SessionId,
		Role:          constant.MessageRoleAssistant,
		Content:       result.Response,
		CitationCount: len(normalized),
	}
	if err := uow.SessionMessageRepository().Create(ctx, assistantMessage); err != nil {
		uow.Rollback()
		return nil, err
	}

	if len(normalized) > 0 {
		rows := make([]*entity.MessageCitation, len(normalized))
		for i, c := range normalized {
			rows[i] = &entity.MessageCitation{
				MessageId:      assistantMessage.Id,
				Rank:           c.Rank,
				Document:       c.Document,
				RelevanceScore: c.RelevanceScore,
				Content:        c.Content,
				Metadata:       metadataMap(c.Metadata),
			}
		}
		if err := uow.MessageCitationRepository().CreateBulk(ctx, rows); err != nil {
			uow.Rollback()
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if len(groups) > 0 {
		fingerprint := correlation.Fingerprint(result.Response)
		cs.bindings.Stage(&correlation.Binding{
			Fingerprint:  fingerprint,
			ResponseText: result.Response,
			Groups:       groups,
			Generation:   cs.linker.Generation(),
		})
		cs.linker.Link(request.SessionId, fingerprint, result.Response)
	}

	// The backend may have extracted new profile data during this turn.
	go cs.syncBackendState(request.SessionId)

	return &dto.SendChatResponse{
		SessionId: request.SessionId,
		MessageId: assistantMessage.Id,
		Response:  result.Response,
		Citations: groupsToDTO(groups),
		CreatedAt: assistantMessage.CreatedAt,
	}, nil
}

func (cs *chatService) GetHistory(ctx context.Context, sessionID string, limit, offset int) ([]*dto.GetChatHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.BySessionID{SessionID: sessionID},
		specification.OrderBy{Field: "created_at"},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	rows, err := uow.SessionMessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	history := make([]*dto.GetChatHistoryResponse, len(rows))
	for i, row := range rows {
		history[i] = &dto.GetChatHistoryResponse{
			Id:            row.Id,
			Role:          row.Role,
			Content:       row.Content,
			CitationCount: row.CitationCount,
			CreatedAt:     row.CreatedAt,
		}
	}
	return history, nil
}

// GetCitations resolves the consolidated groups for a message. The staging
// store answers first; the database is the fallback once cache entries
// have expired.
func (cs *chatService) GetCitations(ctx context.Context, messageID uuid.UUID) (*dto.GetMessageCitationsResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	message, err := uow.SessionMessageRepository().FindOne(ctx, specification.ByID{ID: messageID})
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}

	if groups := cs.bindings.Lookup(messageID.String(), message.Content); groups != nil {
		return &dto.GetMessageCitationsResponse{
			MessageId: messageID,
			Citations: groupsToDTO(groups),
		}, nil
	}

	rows, err := uow.MessageCitationRepository().FindAllByMessageIDs(ctx, []uuid.UUID{messageID})
	if err != nil {
		return nil, err
	}

	raw := make([]citations.Citation, len(rows))
	for i, row := range rows {
		raw[i] = citations.Citation{
			Rank:           row.Rank,
			Document:       row.Document,
			RelevanceScore: row.RelevanceScore,
			Content:        row.Content,
			Metadata:       metadataFromMap(row.Metadata),
		}
	}

	return &dto.GetMessageCitationsResponse{
		MessageId: messageID,
		Citations: groupsToDTO(citations.Consolidate(raw)),
	}, nil
}

// syncBackendState pulls the backend's current session view and merges it
// locally. Best effort; runs detached from the request.
func (cs *chatService) syncBackendState(sessionID string) {
	ctx := context.Background()

	state, err := cs.backend.GetSession(ctx, sessionID)
	if err != nil {
		cs.logger.Debug("chat", "post-turn session fetch failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return
	}

	request := &dto.SyncDataRequest{
		SessionId:         sessionID,
		UserName:          state.UserName,
		UserEmail:         state.UserEmail,
		UserRole:          state.UserRole,
		SchoolAffiliation: state.SchoolAffiliation,
		VentureStage:      state.VentureStage,
		PrimaryNeed:       state.PrimaryNeed,
		UrgencyLevel:      state.UrgencyLevel,
		Department:        state.Department,
		StartupStage:      state.StartupStage,
	}
	if state.Phase != "" {
		request.Phase = &state.Phase
	}
	if state.CompletionRate > 0 {
		request.CompletionRate = &state.CompletionRate
	}

	if _, err := cs.sessionService.SyncFields(ctx, request); err != nil {
		cs.logger.Warn("chat", "post-turn field sync failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}

func groupsToDTO(groups []citations.ConsolidatedGroup) []dto.CitationGroupDTO {
	out := make([]dto.CitationGroupDTO, len(groups))
	for i, g := range groups {
		out[i] = dto.CitationGroupDTO{
			Rank:           g.Representative.Rank,
			Document:       g.Representative.Document,
			RelevanceScore: g.Representative.RelevanceScore,
			Content:        g.Content,
			OriginalRanks:  g.OriginalRanks,
			MemberCount:    g.MemberCount,
			Metadata:       metadataMap(g.Representative.Metadata),
		}
	}
	return out
}

func metadataMap(m citations.SourceMetadata) map[string]interface{} {
	out := map[string]interface{}{}
	if m.SourceURL != "" {
		out["source_url"] = m.SourceURL
	}
	if m.FilePath != "" {
		out["file_path"] = m.FilePath
	}
	if m.DocType != "" {
		out["doc_type"] = m.DocType
	}
	if m.NotionURL != "" {
		out["notion_url"] = m.NotionURL
	}
	if m.DownloadURL != "" {
		out["download_url"] = m.DownloadURL
	}
	if m.PageTitle != "" {
		out["page_title"] = m.PageTitle
	}
	if m.Section != "" {
		out["section"] = m.Section
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func metadataFromMap(m map[string]interface{}) citations.SourceMetadata {
	get := func(key string) string {
		if v, ok := m[key].(string); ok {
			return v
		}
		return ""
	}
	return citations.SourceMetadata{
		SourceURL:   get("source_url"),
		FilePath:    get("file_path"),
		DocType:     get("doc_type"),
		NotionURL:   get("notion_url"),
		DownloadURL: get("download_url"),
		PageTitle:   get("page_title"),
		Section:     get("section"),
	}
}
