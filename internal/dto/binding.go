package dto

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs the custom binding rules used by the
// request DTOs on gin's validator engine. Call once at startup.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	// txtype: BUY or SELL, case-insensitive (handlers normalise before use).
	return v.RegisterValidation("txtype", func(fl validator.FieldLevel) bool {
		t := strings.ToUpper(fl.Field().String())
		return t == "BUY" || t == "SELL"
	})
}
