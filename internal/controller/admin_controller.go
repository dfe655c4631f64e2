package controller

import (
	"bevgenie-be/internal/dto"
	"bevgenie-be/internal/pkg/serverutils"
	"bevgenie-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
	ListPersonas(ctx *fiber.Ctx) error
	ListSignalEvents(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("logs", c.GetLogs)
	h.Get("personas", c.ListPersonas)
	h.Get("signals", c.ListSignalEvents)
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	var req dto.GetLogsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid query parameters")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.GetLogs(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *adminController) ListSignalEvents(ctx *fiber.Ctx) error {
	var req dto.ListSignalEventsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid query parameters")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.ListSignalEvents(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list signal events", res))
}

func (c *adminController) ListPersonas(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.adminService.ListPersonas(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list personas", res))
}
