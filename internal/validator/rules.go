package validator

import (
	"log"

	"agency_admin/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires model-level enumerations into the validator.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("order_status", validateOrderStatus)
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return models.OrderStatus(fl.Field().String()).Valid()
}
