package controller

import (
	"github.com/gofiber/fiber/v2"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/pkg/serverutils"
	"onemore-backend/internal/service"
)

type IRecordController interface {
	RegisterRoutes(r fiber.Router, requireAuth fiber.Handler)
}

type recordController struct {
	service service.IRecordService
}

func NewRecordController(service service.IRecordService) IRecordController {
	return &recordController{service: service}
}

func (c *recordController) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	h := r.Group("/records", requireAuth)
	h.Get("/", c.ListRecords)
	h.Post("/", c.CreateRecord)
	h.Put("/:id", c.UpdateRecord)
	h.Delete("/:id", c.DeleteRecord)
}

func (c *recordController) ListRecords(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	res, err := c.service.ListRecords(ctx.Context(), identity.User, ctx.Query("date"))
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *recordController) CreateRecord(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)

	var req dto.CreateRecordRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateRecord(ctx.Context(), identity.User, &req)
	if err != nil {
		return err
	}
	return serverutils.OkStatus(ctx, fiber.StatusCreated, res)
}

func (c *recordController) UpdateRecord(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)

	var req dto.UpdateRecordRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateRecord(ctx.Context(), identity.User, ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *recordController) DeleteRecord(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	res, err := c.service.DeleteRecord(ctx.Context(), identity.User, ctx.Params("id"))
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}
