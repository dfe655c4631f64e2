package service

import (
	"context"
	"fmt"

	"bevgenie-be/internal/dto"
	"bevgenie-be/internal/pkg/serverutils"
	"bevgenie-be/internal/repository/memory"
	"bevgenie-be/internal/repository/unitofwork"
)

type IPresentationService interface {
	GenerateDeck(ctx context.Context, sessionId string) (*dto.GeneratePresentationResponse, error)
}

// presentationService builds the follow-up deck from the inquiries tracked
// during the warm session. No LLM call is involved; slides replay what the
// generated pages already answered.
type presentationService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessionRepo *memory.SessionRepository
}

func NewPresentationService(uowFactory unitofwork.RepositoryFactory, sessionRepo *memory.SessionRepository) IPresentationService {
	return &presentationService{
		uowFactory:  uowFactory,
		sessionRepo: sessionRepo,
	}
}

func (ps *presentationService) GenerateDeck(ctx context.Context, sessionId string) (*dto.GeneratePresentationResponse, error) {
	sess, found := ps.sessionRepo.Get(sessionId)
	if !found || len(sess.TrackedInquiries) == 0 {
		return nil, serverutils.NewBadRequestError("no tracked inquiries for this session")
	}

	title := "Your BevGenie Conversation Summary"
	uow := ps.uowFactory.NewUnitOfWork(ctx)
	if personaRow, err := uow.PersonaRepository().FindBySessionId(ctx, sessionId); err == nil && personaRow != nil && personaRow.Score != nil {
		if focus := personaRow.Score.ProductFocus.Value; focus != "" {
			title = fmt.Sprintf("BevGenie for Your %s Business", capitalize(focus))
		}
	}

	slides := make([]dto.SlideDTO, 0, len(sess.TrackedInquiries))
	for i, inquiry := range sess.TrackedInquiries {
		slide := dto.SlideDTO{
			Title:    fmt.Sprintf("Question %d", i+1),
			Question: inquiry.Question,
			Solution: inquiry.Solution,
			ROINote:  inquiry.ROINote,
		}
		if inquiry.Intent != "" {
			slide.Bullets = append(slide.Bullets, "Topic: "+inquiry.Intent)
		}
		if inquiry.ROINote != "" {
			slide.Bullets = append(slide.Bullets, "Key figure: "+inquiry.ROINote)
		}
		slides = append(slides, slide)
	}

	return &dto.GeneratePresentationResponse{
		SessionId:  sessionId,
		Title:      title,
		Slides:     slides,
		SlideCount: len(slides),
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
