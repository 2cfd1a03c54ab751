package controller

import (
	"github.com/gofiber/fiber/v2"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/pkg/serverutils"
	"onemore-backend/internal/service"
)

type ISocialController interface {
	RegisterRoutes(r fiber.Router, requireAuth fiber.Handler)
}

type socialController struct {
	service service.ISocialService
}

func NewSocialController(service service.ISocialService) ISocialController {
	return &socialController{service: service}
}

func (c *socialController) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	h := r.Group("/social", requireAuth)
	h.Get("/posts", c.ListPosts)
	h.Post("/posts", c.CreatePost)
	h.Post("/posts/:id/like", c.ToggleLike)
	h.Get("/posts/:id/comments", c.ListComments)
	h.Post("/posts/:id/comments", c.CreateComment)
	h.Delete("/posts/:id/comments/:commentId", c.DeleteComment)
}

func (c *socialController) ListPosts(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	res, err := c.service.ListPosts(ctx.Context(), identity.User)
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *socialController) CreatePost(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)

	var req dto.CreatePostRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreatePost(ctx.Context(), identity.User, &req)
	if err != nil {
		return err
	}
	return serverutils.OkStatus(ctx, fiber.StatusCreated, res)
}

func (c *socialController) ToggleLike(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	res, err := c.service.ToggleLike(ctx.Context(), identity.User, ctx.Params("id"))
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *socialController) ListComments(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)

	page := ctx.QueryInt("page", 1)
	pageSize := ctx.QueryInt("pageSize", 0)

	res, err := c.service.ListComments(ctx.Context(), identity.User, ctx.Params("id"), page, pageSize)
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *socialController) CreateComment(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)

	var req dto.CreateCommentRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateComment(ctx.Context(), identity.User, ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *socialController) DeleteComment(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	res, err := c.service.DeleteComment(ctx.Context(), identity.User, ctx.Params("id"), ctx.Params("commentId"))
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}
