package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest parses the JSON body into req and runs struct
// validation. Returns a 400 AppError with a readable field list on
// failure.
func ValidateRequest(ctx *fiber.Ctx, req any) error {
	if err := ctx.BodyParser(req); err != nil {
		return NewValidation("invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		var fields []string
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				fields = append(fields, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return NewValidation("validation failed: " + strings.Join(fields, ", "))
		}
		return NewValidation("validation failed")
	}
	return nil
}
