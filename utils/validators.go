package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/riadev/ria-server/usecase"
)

var Validate *validator.Validate

// InitValidator registers the custom phone rule on both the standalone
// validator and gin's binding engine.
func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("cnmobile", ValidatePhoneRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("cnmobile", ValidatePhoneRule)
	}
}

// ValidatePhoneRule accepts 11-digit mobile numbers.
func ValidatePhoneRule(fl validator.FieldLevel) bool {
	return usecase.ValidPhone(fl.Field().String())
}
