package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pact-recycling/pact/internal/domain/membership"
)

// The "program" tag validates that a string field names a known
// recycling program.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("program", func(fl validator.FieldLevel) bool {
			return membership.ProgramType(fl.Field().String()).IsValid()
		})
	}
}
