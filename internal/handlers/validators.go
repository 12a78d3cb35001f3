package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCodePattern accepts any three uppercase letters. The engine treats
// codes as opaque labels with a registry lookup for minor-unit scale, so
// codes outside ISO 4217 are still computable.
var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// registerValidations installs custom binding validators. Re-registering a
// name overwrites the previous validator, so this is safe to call again.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return currencyCodePattern.MatchString(fl.Field().String())
		})
	}
}
