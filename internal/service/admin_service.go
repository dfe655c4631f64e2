package service

import (
	"context"
	"time"

	"bevgenie-be/internal/dto"
	"bevgenie-be/internal/pkg/logger"
	"bevgenie-be/internal/pkg/serverutils"
	"bevgenie-be/internal/repository/specification"
	"bevgenie-be/internal/repository/unitofwork"
)

type IAdminService interface {
	GetLogs(request *dto.GetLogsRequest) ([]logger.LogEntry, error)
	ListPersonas(ctx context.Context, limit, offset int) (*dto.ListPersonasResponse, error)
	ListSignalEvents(ctx context.Context, request *dto.ListSignalEventsRequest) (*dto.ListSignalEventsResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (as *adminService) GetLogs(request *dto.GetLogsRequest) ([]logger.LogEntry, error) {
	limit := request.Limit
	if limit <= 0 {
		limit = 100
	}
	return as.logger.GetLogs(request.Level, limit, request.Offset)
}

func (as *adminService) ListPersonas(ctx context.Context, limit, offset int) (*dto.ListPersonasResponse, error) {
	if limit <= 0 {
		limit = 50
	}

	uow := as.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.PersonaRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	personas, err := uow.PersonaRepository().FindAll(ctx,
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListPersonasResponse{
		Personas: make([]dto.AdminPersonaResponse, 0, len(personas)),
		Total:    total,
	}
	for _, p := range personas {
		row := dto.AdminPersonaResponse{
			SessionId: p.SessionId,
			Persona:   personaSummary(p.Score),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
		if p.Score != nil {
			row.SupplierScore = p.Score.SupplierScore
			row.DistributorScore = p.Score.DistributorScore
			row.TotalInteractions = p.Score.TotalInteractions
		}
		resp.Personas = append(resp.Personas, row)
	}

	return resp, nil
}

// ListSignalEvents pages through the signal audit log, optionally filtered
// by detection vector and a lower time bound.
func (as *adminService) ListSignalEvents(ctx context.Context, request *dto.ListSignalEventsRequest) (*dto.ListSignalEventsResponse, error) {
	limit := request.Limit
	if limit <= 0 {
		limit = 100
	}

	var filters []specification.Specification
	if request.Vector != "" {
		filters = append(filters, specification.ByVector{Vector: request.Vector})
	}
	if request.Since != "" {
		since, err := time.Parse(time.RFC3339, request.Since)
		if err != nil {
			return nil, serverutils.NewBadRequestError("since must be an RFC3339 timestamp")
		}
		filters = append(filters, specification.CreatedAfter{Time: since})
	}

	uow := as.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.SignalEventRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	events, err := uow.SignalEventRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: request.Offset},
	)...)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListSignalEventsResponse{
		Events: make([]dto.AdminSignalEventResponse, 0, len(events)),
		Total:  total,
	}
	for _, ev := range events {
		resp.Events = append(resp.Events, dto.AdminSignalEventResponse{
			SessionId:        ev.SessionId,
			Vector:           ev.Vector,
			Value:            ev.Value,
			Strength:         ev.Strength,
			ConfidenceBefore: ev.ConfidenceBefore,
			ConfidenceAfter:  ev.ConfidenceAfter,
			Evidence:         ev.Evidence,
			Source:           ev.Source,
			CreatedAt:        ev.CreatedAt,
		})
	}

	return resp, nil
}
