package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"onemore-backend/internal/pkg/apperror"
)

var validate = validator.New()

// ParseBody decodes the JSON body into dst and enforces its `validate`
// tags. Both failure modes are user-correctable, so both map to
// VALIDATION_ERROR.
func ParseBody(ctx *fiber.Ctx, dst interface{}) error {
	if err := ctx.BodyParser(dst); err != nil {
		return apperror.Validation("Invalid JSON body.")
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return apperror.Validation("Field '" + fieldErrs[0].Field() + "' failed validation: " + fieldErrs[0].Tag() + ".")
		}
		return apperror.Validation("Invalid request body.")
	}
	return nil
}
