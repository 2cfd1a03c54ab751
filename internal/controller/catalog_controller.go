package controller

import (
	"github.com/gofiber/fiber/v2"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/pkg/serverutils"
	"onemore-backend/internal/service"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router, requireAuth fiber.Handler)
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	h := r.Group("/catalog", requireAuth)
	h.Get("/exercises", c.ListExercises)
	h.Get("/foods", c.ListFoods)
}

func (c *catalogController) ListExercises(ctx *fiber.Ctx) error {
	query := dto.ExerciseQuery{
		Q:           ctx.Query("q"),
		MuscleGroup: ctx.Query("muscleGroup"),
		Equipment:   ctx.Query("equipment"),
	}
	res, err := c.service.ListExercises(ctx.Context(), query)
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *catalogController) ListFoods(ctx *fiber.Ctx) error {
	res, err := c.service.ListFoods(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}
