package controller

import (
	"github.com/gofiber/fiber/v2"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/pkg/serverutils"
	"onemore-backend/internal/service"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router, requireAuth fiber.Handler)
}

type chatbotController struct {
	service service.IChatbotService
}

func NewChatbotController(service service.IChatbotService) IChatbotController {
	return &chatbotController{service: service}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	h := r.Group("/ai", requireAuth)
	h.Get("/conversations", c.ListConversations)
	h.Post("/conversations", c.CreateConversation)
	h.Put("/conversations/:id", c.RenameConversation)
	h.Delete("/conversations/:id", c.DeleteConversation)
	h.Get("/messages", c.GetMessages)
	h.Get("/search", c.Search)
	h.Post("/chat", c.Chat)
}

func (c *chatbotController) ListConversations(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	res, err := c.service.ListConversations(ctx.Context(), identity.User)
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *chatbotController) CreateConversation(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)

	var req dto.CreateConversationRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateConversation(ctx.Context(), identity.User, &req)
	if err != nil {
		return err
	}
	return serverutils.OkStatus(ctx, fiber.StatusCreated, res)
}

func (c *chatbotController) RenameConversation(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)

	var req dto.RenameConversationRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.RenameConversation(ctx.Context(), identity.User, ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *chatbotController) DeleteConversation(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	res, err := c.service.DeleteConversation(ctx.Context(), identity.User, ctx.Params("id"))
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *chatbotController) GetMessages(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	res, err := c.service.GetMessages(ctx.Context(), identity.User, ctx.Query("conversationId"))
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *chatbotController) Search(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	res, err := c.service.SearchMessages(ctx.Context(), identity.User, ctx.Query("q"))
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)

	var req dto.ChatRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.Context(), identity.User, &req)
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}
