package controller

import (
	"github.com/gofiber/fiber/v2"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/pkg/serverutils"
	"onemore-backend/internal/service"
)

type IWorkoutController interface {
	RegisterRoutes(r fiber.Router, requireAuth fiber.Handler)
}

type workoutController struct {
	service service.IWorkoutService
}

func NewWorkoutController(service service.IWorkoutService) IWorkoutController {
	return &workoutController{service: service}
}

func (c *workoutController) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	h := r.Group("/workouts", requireAuth)
	h.Get("/logs", c.ListLogs)
	h.Post("/logs", c.CreateLog)
}

func (c *workoutController) ListLogs(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	res, err := c.service.ListLogs(ctx.Context(), identity.User, ctx.Query("date"))
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *workoutController) CreateLog(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)

	var req dto.CreateWorkoutLogRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateLog(ctx.Context(), identity.User, &req)
	if err != nil {
		return err
	}
	return serverutils.OkStatus(ctx, fiber.StatusCreated, res)
}
