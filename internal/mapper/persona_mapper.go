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

type PersonaMapper struct{}

func NewPersonaMapper() *PersonaMapper {
	return &PersonaMapper{}
}

// historyPayload is the jsonb shape of the per-vector value histories.
type historyPayload struct {
	FunctionalRole []string `json:"functional_role,omitempty"`
	OrgType        []string `json:"org_type,omitempty"`
	OrgSize        []string `json:"org_size,omitempty"`
	ProductFocus   []string `json:"product_focus,omitempty"`
}

// painPayload is the jsonb shape of the pain-point state. Detected keeps
// first-touch order, which the confidence map alone cannot.
type painPayload struct {
	Confidence map[persona.PainPoint]float64 `json:"confidence"`
	Detected   []persona.PainPoint           `json:"detected"`
}

func (m *PersonaMapper) ToEntity(p *model.VisitorPersona) *entity.VisitorPersona {
	if p == nil {
		return nil
	}

	score := persona.NewScoreVector()
	score.FunctionalRole = persona.DetectionVector{Value: p.FunctionalRole, Confidence: p.FunctionalRoleConf}
	score.OrgType = persona.DetectionVector{Value: p.OrgType, Confidence: p.OrgTypeConf}
	score.OrgSize = persona.DetectionVector{Value: p.OrgSize, Confidence: p.OrgSizeConf}
	score.ProductFocus = persona.DetectionVector{Value: p.ProductFocus, Confidence: p.ProductFocusConf}
	score.SupplierScore = p.SupplierScore
	score.DistributorScore = p.DistributorScore
	score.OverallConfidence = p.OverallConfidence
	score.TotalInteractions = p.TotalInteractions

	if len(p.VectorHistory) > 0 {
		var hist historyPayload
		if err := json.Unmarshal(p.VectorHistory, &hist); err == nil {
			score.FunctionalRole.History = hist.FunctionalRole
			score.OrgType.History = hist.OrgType
			score.OrgSize.History = hist.OrgSize
			score.ProductFocus.History = hist.ProductFocus
		}
	}

	if len(p.PainPoints) > 0 {
		var pains painPayload
		if err := json.Unmarshal(p.PainPoints, &pains); err == nil {
			if pains.Confidence != nil {
				score.PainPointConfidence = pains.Confidence
			}
			score.PainPointsDetected = pains.Detected
		}
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.VisitorPersona{
		Id:        p.Id,
		SessionId: p.SessionId,
		Score:     score,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: p.DeletedAt.Valid,
	}
}

func (m *PersonaMapper) ToModel(p *entity.VisitorPersona) *model.VisitorPersona {
	if p == nil {
		return nil
	}

	score := p.Score
	if score == nil {
		score = persona.NewScoreVector()
	}

	histRaw, _ := json.Marshal(historyPayload{
		FunctionalRole: score.FunctionalRole.History,
		OrgType:        score.OrgType.History,
		OrgSize:        score.OrgSize.History,
		ProductFocus:   score.ProductFocus.History,
	})

	painsRaw, _ := json.Marshal(painPayload{
		Confidence: score.PainPointConfidence,
		Detected:   score.PainPointsDetected,
	})

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.VisitorPersona{
		Id:                 p.Id,
		SessionId:          p.SessionId,
		FunctionalRole:     score.FunctionalRole.Value,
		FunctionalRoleConf: score.FunctionalRole.Confidence,
		OrgType:            score.OrgType.Value,
		OrgTypeConf:        score.OrgType.Confidence,
		OrgSize:            score.OrgSize.Value,
		OrgSizeConf:        score.OrgSize.Confidence,
		ProductFocus:       score.ProductFocus.Value,
		ProductFocusConf:   score.ProductFocus.Confidence,
		VectorHistory:      datatypes.JSON(histRaw),
		PainPoints:         datatypes.JSON(painsRaw),
		SupplierScore:      score.SupplierScore,
		DistributorScore:   score.DistributorScore,
		OverallConfidence:  score.OverallConfidence,
		TotalInteractions:  score.TotalInteractions,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          updatedAt,
		DeletedAt:          deletedAt,
	}
}
