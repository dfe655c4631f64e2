package persona

import (
	"fmt"
	"strings"
)

// Vector identifies one of the independent detection dimensions tracked per session.
type Vector string

const (
	VectorFunctionalRole Vector = "functional_role"
	VectorOrgType        Vector = "org_type"
	VectorOrgSize        Vector = "org_size"
	VectorProductFocus   Vector = "product_focus"
	VectorPainPoint      Vector = "pain_point"

	// VectorLegacyUserType feeds the deprecated supplier/distributor float
	// scores only. OrgType is the canonical representation.
	VectorLegacyUserType Vector = "legacy_user_type"
)

// Functional role values
const (
	RoleSales     = "sales"
	RoleMarketing = "marketing"
)

// Org type values
const (
	OrgTypeSupplier = "supplier"
	OrgTypeRetailer = "retailer"
)

// Legacy user-type values (deprecated dimension)
const (
	LegacySupplier    = "supplier"
	LegacyDistributor = "distributor"
)

// Org size values
const (
	OrgSizeSmall  = "S"
	OrgSizeMedium = "M"
	OrgSizeLarge  = "L"
)

// Product focus values
const (
	ProductBeer    = "beer"
	ProductSpirits = "spirits"
	ProductWine    = "wine"
)

// PainPoint is one of the six fixed business-challenge categories.
type PainPoint string

const (
	PainExecutionBlindSpot   PainPoint = "execution_blind_spot"
	PainMarketAssessment     PainPoint = "market_assessment"
	PainSalesEffectiveness   PainPoint = "sales_effectiveness"
	PainMarketPositioning    PainPoint = "market_positioning"
	PainOperationalChallenge PainPoint = "operational_challenge"
	PainRegulatoryCompliance PainPoint = "regulatory_compliance"
)

// historyCap bounds each detection vector's value history (FIFO).
const historyCap = 5

// DetectionVector holds the current classification for one dimension.
// Confidence is on a 0-100 scale; History keeps the last adopted values,
// oldest first.
type DetectionVector struct {
	Value      string   `json:"value,omitempty"`
	Confidence float64  `json:"confidence"`
	History    []string `json:"history,omitempty"`
}

// ScoreVector is the per-session accumulated persona state. It is owned by
// the accumulator; callers treat it as read-only.
type ScoreVector struct {
	FunctionalRole DetectionVector `json:"functional_role"`
	OrgType        DetectionVector `json:"org_type"`
	OrgSize        DetectionVector `json:"org_size"`
	ProductFocus   DetectionVector `json:"product_focus"`

	// Pain-point confidences live on a 0-1 scale. Keys always mirror
	// PainPointsDetected membership.
	PainPointConfidence map[PainPoint]float64 `json:"pain_point_confidence"`
	PainPointsDetected  []PainPoint           `json:"pain_points_detected"`

	// Deprecated user-type scores kept alongside OrgType. Read-only for
	// consumers; only legacy signals write them.
	SupplierScore    float64 `json:"supplier_score"`
	DistributorScore float64 `json:"distributor_score"`

	OverallConfidence float64 `json:"overall_confidence"`
	TotalInteractions int     `json:"total_interactions"`
}

// NewScoreVector returns a neutral vector for a session's first appearance.
func NewScoreVector() *ScoreVector {
	return &ScoreVector{
		PainPointConfidence: make(map[PainPoint]float64),
	}
}

// Clone deep-copies the vector so Apply can return a fresh value without
// aliasing history slices or the pain-point map.
func (v *ScoreVector) Clone() *ScoreVector {
	out := *v
	out.FunctionalRole.History = append([]string(nil), v.FunctionalRole.History...)
	out.OrgType.History = append([]string(nil), v.OrgType.History...)
	out.OrgSize.History = append([]string(nil), v.OrgSize.History...)
	out.ProductFocus.History = append([]string(nil), v.ProductFocus.History...)
	out.PainPointsDetected = append([]PainPoint(nil), v.PainPointsDetected...)
	out.PainPointConfidence = make(map[PainPoint]float64, len(v.PainPointConfidence))
	for k, c := range v.PainPointConfidence {
		out.PainPointConfidence[k] = c
	}
	return &out
}

// Detection returns the detection vector for the given dimension, or nil for
// pain-point and legacy pseudo-dimensions.
func (v *ScoreVector) Detection(vec Vector) *DetectionVector {
	switch vec {
	case VectorFunctionalRole:
		return &v.FunctionalRole
	case VectorOrgType:
		return &v.OrgType
	case VectorOrgSize:
		return &v.OrgSize
	case VectorProductFocus:
		return &v.ProductFocus
	}
	return nil
}

// Describe renders a compact persona summary for prompt injection.
func (v *ScoreVector) Describe() string {
	var parts []string
	if v.FunctionalRole.Value != "" {
		parts = append(parts, fmt.Sprintf("role: %s (%.0f%%)", v.FunctionalRole.Value, v.FunctionalRole.Confidence))
	}
	if v.OrgType.Value != "" {
		parts = append(parts, fmt.Sprintf("organization: %s", v.OrgType.Value))
	}
	if v.OrgSize.Value != "" {
		parts = append(parts, fmt.Sprintf("size: %s", v.OrgSize.Value))
	}
	if v.ProductFocus.Value != "" {
		parts = append(parts, fmt.Sprintf("product focus: %s", v.ProductFocus.Value))
	}
	if len(v.PainPointsDetected) > 0 {
		pains := make([]string, len(v.PainPointsDetected))
		for i, p := range v.PainPointsDetected {
			pains[i] = string(p)
		}
		parts = append(parts, "pain points: "+strings.Join(pains, ", "))
	}
	if len(parts) == 0 {
		return "unknown visitor, no persona signals yet"
	}
	return strings.Join(parts, "; ")
}

// Tags returns the detected values usable as knowledge-search filters.
func (v *ScoreVector) Tags() []string {
	var tags []string
	for _, dv := range []DetectionVector{v.FunctionalRole, v.OrgType, v.ProductFocus} {
		if dv.Value != "" {
			tags = append(tags, dv.Value)
		}
	}
	return tags
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func clamp100(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return f
}
