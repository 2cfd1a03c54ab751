package controller

import (
	"github.com/gofiber/fiber/v2"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/pkg/serverutils"
	"onemore-backend/internal/service"
)

type INutritionController interface {
	RegisterRoutes(r fiber.Router, requireAuth fiber.Handler)
}

type nutritionController struct {
	service service.INutritionService
}

func NewNutritionController(service service.INutritionService) INutritionController {
	return &nutritionController{service: service}
}

func (c *nutritionController) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	h := r.Group("/nutrition", requireAuth)
	h.Get("/daily", c.GetDaily)
	h.Post("/daily", c.UpsertDaily)
}

func (c *nutritionController) GetDaily(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	res, err := c.service.GetDailyLog(ctx.Context(), identity.User, ctx.Query("date"))
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *nutritionController) UpsertDaily(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)

	var req dto.UpsertDailyNutritionRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpsertDailyLog(ctx.Context(), identity.User, &req)
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}
