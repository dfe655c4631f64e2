package contract

import (
	"context"

	"bevgenie-be/internal/entity"
	"bevgenie-be/internal/repository/specification"
)

type SignalEventRepository interface {
	CreateBulk(ctx context.Context, events []*entity.SignalEvent) error
	DeleteBySessionId(ctx context.Context, sessionId string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SignalEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
