package mapper

import (
	"encoding/json"
	"time"

	"bevgenie-be/internal/entity"
	"bevgenie-be/internal/model"
	"bevgenie-be/pkg/persona"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) MessageToEntity(msg *model.ConversationMessage) *entity.ConversationMessage {
	if msg == nil {
		return nil
	}

	var snapshot *persona.ScoreVector
	if len(msg.PersonaSnapshot) > 0 {
		var s persona.ScoreVector
		if err := json.Unmarshal(msg.PersonaSnapshot, &s); err == nil {
			snapshot = &s
		}
	}

	var deletedAt *time.Time
	if msg.DeletedAt.Valid {
		t := msg.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !msg.UpdatedAt.IsZero() {
		t := msg.UpdatedAt
		updatedAt = &t
	}

	return &entity.ConversationMessage{
		Id:              msg.Id,
		SessionId:       msg.SessionId,
		Role:            msg.Role,
		Content:         msg.Content,
		Intent:          msg.Intent,
		Score:           msg.Score,
		PageType:        msg.PageType,
		PersonaSnapshot: snapshot,
		CreatedAt:       msg.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
		IsDeleted:       msg.DeletedAt.Valid,
	}
}

func (m *ConversationMapper) MessageToModel(msg *entity.ConversationMessage) *model.ConversationMessage {
	if msg == nil {
		return nil
	}

	var snapshot datatypes.JSON
	if msg.PersonaSnapshot != nil {
		if raw, err := json.Marshal(msg.PersonaSnapshot); err == nil {
			snapshot = datatypes.JSON(raw)
		}
	}

	var deletedAt gorm.DeletedAt
	if msg.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *msg.DeletedAt, Valid: true}
	} else if msg.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if msg.UpdatedAt != nil {
		updatedAt = *msg.UpdatedAt
	}

	return &model.ConversationMessage{
		Id:              msg.Id,
		SessionId:       msg.SessionId,
		Role:            msg.Role,
		Content:         msg.Content,
		Intent:          msg.Intent,
		Score:           msg.Score,
		PageType:        msg.PageType,
		PersonaSnapshot: snapshot,
		CreatedAt:       msg.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
	}
}

func (m *ConversationMapper) SignalEventToEntity(ev *model.SignalEvent) *entity.SignalEvent {
	if ev == nil {
		return nil
	}

	return &entity.SignalEvent{
		Id:               ev.Id,
		SessionId:        ev.SessionId,
		Vector:           ev.Vector,
		Value:            ev.Value,
		Strength:         ev.Strength,
		ConfidenceBefore: ev.ConfidenceBefore,
		ConfidenceAfter:  ev.ConfidenceAfter,
		Evidence:         ev.Evidence,
		Source:           ev.Source,
		CreatedAt:        ev.CreatedAt,
	}
}

func (m *ConversationMapper) SignalEventToModel(ev *entity.SignalEvent) *model.SignalEvent {
	if ev == nil {
		return nil
	}

	return &model.SignalEvent{
		Id:               ev.Id,
		SessionId:        ev.SessionId,
		Vector:           ev.Vector,
		Value:            ev.Value,
		Strength:         ev.Strength,
		ConfidenceBefore: ev.ConfidenceBefore,
		ConfidenceAfter:  ev.ConfidenceAfter,
		Evidence:         ev.Evidence,
		Source:           ev.Source,
		CreatedAt:        ev.CreatedAt,
	}
}
