package dto

import "time"

type GetLogsRequest struct {
	Level  string `query:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

type AdminPersonaResponse struct {
	SessionId         string             `json:"session_id"`
	Persona           *PersonaSummaryDTO `json:"persona"`
	SupplierScore     float64            `json:"supplier_score"`
	DistributorScore  float64            `json:"distributor_score"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         *time.Time         `json:"updated_at,omitempty"`
	TotalInteractions int                `json:"total_interactions"`
}

type ListPersonasResponse struct {
	Personas []AdminPersonaResponse `json:"personas"`
	Total    int64                  `json:"total"`
}

type ListSignalEventsRequest struct {
	Vector string `query:"vector" validate:"omitempty,oneof=functional_role org_type org_size product_focus pain_point legacy_user_type"`
	Since  string `query:"since" validate:"omitempty"` // RFC3339
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

type AdminSignalEventResponse struct {
	SessionId        string    `json:"session_id"`
	Vector           string    `json:"vector"`
	Value            string    `json:"value"`
	Strength         string    `json:"strength"`
	ConfidenceBefore float64   `json:"confidence_before"`
	ConfidenceAfter  float64   `json:"confidence_after"`
	Evidence         string    `json:"evidence,omitempty"`
	Source           string    `json:"source"`
	CreatedAt        time.Time `json:"created_at"`
}

type ListSignalEventsResponse struct {
	Events []AdminSignalEventResponse `json:"events"`
	Total  int64                      `json:"total"`
}
