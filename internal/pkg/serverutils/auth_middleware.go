package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"onemore-backend/internal/service"
)

const identityLocal = "identity"

// BearerToken extracts the bearer credential from the Authorization
// header. A missing header or a different scheme is simply "no token".
func BearerToken(ctx *fiber.Ctx) string {
	auth := ctx.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[len("Bearer "):])
}

// NewAuthMiddleware guards protected routes: it resolves the bearer
// token to an identity and stashes it in ctx locals.
func NewAuthMiddleware(authService service.IAuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identity, err := authService.Authenticate(ctx.Context(), BearerToken(ctx))
		if err != nil {
			return err
		}
		ctx.Locals(identityLocal, identity)
		return ctx.Next()
	}
}

// CurrentIdentity returns the identity stored by the auth middleware.
// Calling it from an unguarded handler is a programming error.
func CurrentIdentity(ctx *fiber.Ctx) *service.Identity {
	identity, _ := ctx.Locals(identityLocal).(*service.Identity)
	return identity
}
