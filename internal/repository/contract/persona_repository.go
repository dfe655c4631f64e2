package contract

import (
	"context"

	"bevgenie-be/internal/entity"
	"bevgenie-be/internal/repository/specification"
)

type PersonaRepository interface {
	Create(ctx context.Context, persona *entity.VisitorPersona) error
	Update(ctx context.Context, persona *entity.VisitorPersona) error
	DeleteBySessionId(ctx context.Context, sessionId string) error
	FindBySessionId(ctx context.Context, sessionId string) (*entity.VisitorPersona, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VisitorPersona, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
