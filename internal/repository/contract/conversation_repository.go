package contract

import (
	"context"

	"bevgenie-be/internal/entity"
	"bevgenie-be/internal/repository/specification"
)

type ConversationRepository interface {
	Create(ctx context.Context, message *entity.ConversationMessage) error
	DeleteBySessionId(ctx context.Context, sessionId string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
