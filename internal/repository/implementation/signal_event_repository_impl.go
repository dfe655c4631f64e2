package implementation

import (
	"context"

	"bevgenie-be/internal/entity"
	"bevgenie-be/internal/mapper"
	"bevgenie-be/internal/model"
	"bevgenie-be/internal/repository/contract"
	"bevgenie-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SignalEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewSignalEventRepository(db *gorm.DB) contract.SignalEventRepository {
	return &SignalEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *SignalEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SignalEventRepositoryImpl) CreateBulk(ctx context.Context, events []*entity.SignalEvent) error {
	if len(events) == 0 {
		return nil
	}
	models := make([]*model.SignalEvent, len(events))
	for i, ev := range events {
		models[i] = r.mapper.SignalEventToModel(ev)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*events[i] = *r.mapper.SignalEventToEntity(m)
	}
	return nil
}

func (r *SignalEventRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.SignalEvent{}).Error
}

func (r *SignalEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SignalEvent, error) {
	var models []*model.SignalEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SignalEvent, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SignalEventToEntity(m)
	}
	return entities, nil
}

func (r *SignalEventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SignalEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
