package controller

import (
	"github.com/gofiber/fiber/v2"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/pkg/serverutils"
	"onemore-backend/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, requireAuth fiber.Handler)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Get("/me", requireAuth, c.Me)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.OkStatus(ctx, fiber.StatusCreated, res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

// Logout is deliberately unguarded: revoking an already-dead token must
// still succeed.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	res, err := c.service.Logout(ctx.Context(), serverutils.BearerToken(ctx))
	if err != nil {
		return err
	}
	return serverutils.Ok(ctx, res)
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	identity := serverutils.CurrentIdentity(ctx)
	return serverutils.Ok(ctx, dto.MeResponse{User: dto.NewPublicUser(&identity.User)})
}
