package service

import (
	"context"
	"fmt"
	"time"

	"bevgenie-be/internal/constant"
	"bevgenie-be/internal/dto"
	"bevgenie-be/internal/entity"
	"bevgenie-be/internal/pkg/logger"
	"bevgenie-be/internal/pkg/serverutils"
	"bevgenie-be/internal/repository/memory"
	"bevgenie-be/internal/repository/specification"
	"bevgenie-be/internal/repository/unitofwork"
	"bevgenie-be/pkg/intent"
	"bevgenie-be/pkg/llm"
	"bevgenie-be/pkg/pagegen"
	"bevgenie-be/pkg/persona"
	"bevgenie-be/pkg/store"

	"github.com/google/uuid"
)

// historyWindow bounds how many persisted turns feed the LLM context.
const historyWindow = 10

type IChatService interface {
	SendMessage(ctx context.Context, sessionId string, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, sessionId string) (*dto.GetChatHistoryResponse, error)
	ResetSession(ctx context.Context, sessionId string) error
}

type chatService struct {
	uowFactory   unitofwork.RepositoryFactory
	llmProvider  llm.Provider
	sessionRepo  *memory.SessionRepository
	extractor    persona.SignalExtractor
	accumulator  *persona.Accumulator
	classifier   *intent.Classifier
	orchestrator *pagegen.Orchestrator
	publisher    IPublisherService
	logger       logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.Provider,
	sessionRepo *memory.SessionRepository,
	orchestrator *pagegen.Orchestrator,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:   uowFactory,
		llmProvider:  llmProvider,
		sessionRepo:  sessionRepo,
		extractor:    persona.NewKeywordExtractor(),
		accumulator:  persona.NewAccumulator(),
		classifier:   intent.NewClassifier(),
		orchestrator: orchestrator,
		publisher:    publisher,
		logger:       sysLogger,
	}
}

// SendMessage runs one full widget turn: signal extraction, persona
// accumulation, intent classification, optional page generation, reply
// generation, and persistence. Persona state is committed even when
// downstream LLM calls fail.
func (cs *chatService) SendMessage(ctx context.Context, sessionId string, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	// Low-content openers get a canned greeting and never touch the
	// accumulator, so "hi" does not burn the first-turn boost.
	if !intent.IsQualityInquiry(request.Message) {
		return &dto.SendChatResponse{
			SessionId: sessionId,
			Reply:     constant.GreetingReply,
			Intent:    string(intent.GeneralQuestion),
		}, nil
	}

	personaRow, err := uow.PersonaRepository().FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	current := persona.NewScoreVector()
	if personaRow != nil && personaRow.Score != nil {
		current = personaRow.Score
	}
	turnCount := current.TotalInteractions

	var click *persona.ClickContext
	if request.ClickContext != nil {
		click = &persona.ClickContext{
			Label:   request.ClickContext.Label,
			Section: request.ClickContext.Section,
		}
	}

	signals := cs.extractor.Extract(request.Message, click)
	updated := cs.accumulator.Apply(current, signals)

	// The persona row is recorded before classification reads the updated
	// vector. Writes are best-effort: a storage failure is logged and the
	// turn completes on the in-memory state.
	cs.persistPersona(ctx, uow, sessionId, personaRow, updated, now)

	classification := cs.classifier.Classify(request.Message, turnCount, updated)

	cs.logger.Info("chat", "Turn classified", map[string]interface{}{
		"session_id": sessionId,
		"intent":     classification.Intent,
		"score":      classification.Confidence,
		"page":       classification.ShouldGeneratePage,
		"signals":    len(signals),
	})

	history, err := cs.loadHistory(ctx, uow, sessionId)
	if err != nil {
		cs.logger.Warn("chat", "History load failed, continuing with empty history", map[string]interface{}{
			"session_id": sessionId, "error": err.Error(),
		})
		history = nil
	}

	sess := cs.sessionRepo.GetOrCreate(sessionId)
	sess.MessageCount++

	var (
		page     *pagegen.GeneratedPage
		pageMode string
	)
	if classification.ShouldGeneratePage {
		result := cs.orchestrator.Generate(ctx, &pagegen.Request{
			Message:      request.Message,
			ClickContext: clickLabel(request.ClickContext),
			PageType:     classification.PageType,
			Persona:      updated,
			History:      history,
		})
		if result.Success {
			page = result.Page
			pageMode = result.Mode
			sess.LastPageType = string(classification.PageType)
			sess.Track(store.TrackedInquiry{
				Question: request.Message,
				Intent:   string(classification.Intent),
				Solution: page.Headline,
				ROINote:  roiNote(classification.Intent, page),
				AskedAt:  now,
			})
		} else {
			pageMode = result.Mode
			cs.logger.Warn("chat", "Page generation exhausted, serving fallback copy", map[string]interface{}{
				"session_id": sessionId,
				"page_type":  classification.PageType,
				"attempts":   result.Attempts,
				"violations": result.Violations,
			})
		}
	}
	cs.sessionRepo.Save(sess)

	reply := cs.generateReply(ctx, request.Message, updated, history, page != nil)
	if page == nil && classification.ShouldGeneratePage {
		// The visitor asked for substance the generator could not deliver;
		// the static copy keeps the turn from ending empty-handed.
		reply = reply + "\n\n" + pagegen.FallbackText(classification.PageType)
	}

	cs.persistTranscript(ctx, uow, sessionId, request.Message, reply, classification, updated, now)

	cs.publisher.PublishSignals(sessionId, signals, current, updated, now)

	resp := &dto.SendChatResponse{
		SessionId:      sessionId,
		MessageCount:   sess.MessageCount,
		Reply:          reply,
		Intent:         string(classification.Intent),
		Score:          classification.Confidence,
		Confidence:     updated.OverallConfidence,
		ShouldShowPage: page != nil,
		Page:           page,
		GenerationMode: pageMode,
		Signals:        signalDTOs(signals),
		Persona:        personaSummary(updated),
	}
	if page != nil {
		resp.PageType = string(classification.PageType)
	}
	return resp, nil
}

func (cs *chatService) persistPersona(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	sessionId string,
	personaRow *entity.VisitorPersona,
	updated *persona.ScoreVector,
	now time.Time,
) {
	var err error
	if personaRow == nil {
		err = uow.PersonaRepository().Create(ctx, &entity.VisitorPersona{
			Id:        uuid.New(),
			SessionId: sessionId,
			Score:     updated,
			CreatedAt: now,
		})
	} else {
		personaRow.Score = updated
		err = uow.PersonaRepository().Update(ctx, personaRow)
	}
	if err != nil {
		cs.logger.Error("chat", "Persona write failed, continuing with in-memory state", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}
}

func (cs *chatService) persistTranscript(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	sessionId string,
	message, reply string,
	classification intent.Classification,
	updated *persona.ScoreVector,
	now time.Time,
) {
	err := func() error {
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer uow.Rollback()

		userMessage := &entity.ConversationMessage{
			Id:              uuid.New(),
			SessionId:       sessionId,
			Role:            constant.ChatMessageRoleUser,
			Content:         message,
			Intent:          string(classification.Intent),
			Score:           classification.Confidence,
			PageType:        string(classification.PageType),
			PersonaSnapshot: updated,
			CreatedAt:       now,
		}
		if err := uow.ConversationRepository().Create(ctx, userMessage); err != nil {
			return err
		}

		modelMessage := &entity.ConversationMessage{
			Id:        uuid.New(),
			SessionId: sessionId,
			Role:      constant.ChatMessageRoleModel,
			Content:   reply,
			CreatedAt: now.Add(1 * time.Second),
		}
		if err := uow.ConversationRepository().Create(ctx, modelMessage); err != nil {
			return err
		}

		return uow.Commit()
	}()
	if err != nil {
		cs.logger.Error("chat", "Transcript write failed, response returned without durable history", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}
}

func (cs *chatService) generateReply(ctx context.Context, message string, p *persona.ScoreVector, history []llm.Message, pageShown bool) string {
	profile := "Visitor profile: " + p.Describe()
	if pageShown {
		profile += "\nA tailored page is being shown alongside this reply."
	}

	messages := append(append([]llm.Message(nil), history...), llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: fmt.Sprintf(constant.ReplyPromptV1, profile, message),
	})

	reply, err := cs.llmProvider.Chat(ctx, messages, llm.WithTemperature(0.7))
	if err != nil {
		cs.logger.Warn("chat", "Reply generation failed, using canned fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.ReplyFallback
	}
	return reply
}

func (cs *chatService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, sessionId string) ([]llm.Message, error) {
	messages, err := uow.ConversationRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: historyWindow},
	)
	if err != nil {
		return nil, err
	}

	// Fetched newest first for the limit, replayed oldest first.
	history := make([]llm.Message, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		history = append(history, llm.Message{
			Role:    messages[i].Role,
			Content: messages[i].Content,
		})
	}
	return history, nil
}

// GetHistory returns the persisted transcript plus the current persona view.
func (cs *chatService) GetHistory(ctx context.Context, sessionId string) (*dto.GetChatHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ConversationRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	personaRow, err := uow.PersonaRepository().FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 && personaRow == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}

	resp := &dto.GetChatHistoryResponse{
		SessionId: sessionId,
		Messages:  make([]dto.ChatHistoryMessage, 0, len(messages)),
	}
	if sess, ok := cs.sessionRepo.Get(sessionId); ok {
		resp.MessageCount = sess.MessageCount
	} else {
		// Cold restart: count the persisted visitor turns instead.
		count, err := uow.ConversationRepository().Count(ctx,
			specification.BySessionID{SessionID: sessionId},
			specification.ByRole{Role: constant.ChatMessageRoleUser},
		)
		if err != nil {
			return nil, err
		}
		resp.MessageCount = int(count)
	}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, dto.ChatHistoryMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			Intent:    msg.Intent,
			PageType:  msg.PageType,
			CreatedAt: msg.CreatedAt,
		})
	}

	if personaRow != nil {
		resp.Persona = personaSummary(personaRow.Score)
	}

	return resp, nil
}

// ResetSession forgets everything about the visitor: durable rows and the
// warm in-memory state.
func (cs *chatService) ResetSession(ctx context.Context, sessionId string) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.PersonaRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.ConversationRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.SignalEventRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	cs.sessionRepo.Delete(sessionId)
	return nil
}

func personaSummary(p *persona.ScoreVector) *dto.PersonaSummaryDTO {
	if p == nil {
		return nil
	}
	pains := make([]string, len(p.PainPointsDetected))
	for i, pp := range p.PainPointsDetected {
		pains[i] = string(pp)
	}
	return &dto.PersonaSummaryDTO{
		FunctionalRole:    p.FunctionalRole.Value,
		OrgType:           p.OrgType.Value,
		OrgSize:           p.OrgSize.Value,
		ProductFocus:      p.ProductFocus.Value,
		PainPoints:        pains,
		OverallConfidence: p.OverallConfidence,
		TotalInteractions: p.TotalInteractions,
	}
}

func signalDTOs(signals []persona.Signal) []dto.SignalDTO {
	if len(signals) == 0 {
		return nil
	}
	out := make([]dto.SignalDTO, len(signals))
	for i, sig := range signals {
		value := sig.Value
		if sig.Vector == persona.VectorPainPoint {
			value = string(sig.PainPoint)
		}
		out[i] = dto.SignalDTO{
			Vector:     string(sig.Vector),
			Value:      value,
			Strength:   string(sig.Strength),
			Confidence: sig.Confidence,
			Source:     string(sig.Source),
		}
	}
	return out
}

func clickLabel(click *dto.ClickContextDTO) string {
	if click == nil {
		return ""
	}
	if click.Section != "" {
		return click.Section + ": " + click.Label
	}
	return click.Label
}

// roiNote pulls the headline stat off ROI pages for the presentation export.
func roiNote(i intent.Intent, page *pagegen.GeneratedPage) string {
	if i != intent.ROIInquiry || page == nil || len(page.Stats) == 0 {
		return ""
	}
	return page.Stats[0].Value + " " + page.Stats[0].Label
}
