package controller

import (
	"bevgenie-be/internal/pkg/serverutils"
	"bevgenie-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPresentationController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type presentationController struct {
	presentationService service.IPresentationService
}

func NewPresentationController(presentationService service.IPresentationService) IPresentationController {
	return &presentationController{
		presentationService: presentationService,
	}
}

func (c *presentationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/presentation/v1")
	h.Use(serverutils.SessionMiddleware)
	h.Post("generate", c.Generate)
}

func (c *presentationController) Generate(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	res, err := c.presentationService.GenerateDeck(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate presentation", res))
}
