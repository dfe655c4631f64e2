package unitofwork

import (
	"context"

	"bevgenie-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PersonaRepository() contract.PersonaRepository
	ConversationRepository() contract.ConversationRepository
	SignalEventRepository() contract.SignalEventRepository
	KnowledgeRepository() contract.KnowledgeRepository
}
