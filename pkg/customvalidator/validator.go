package customvalidator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"agrorent-api/pkg/utils"
)

var brStateRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// MinManufactureYear is the oldest accepted equipment manufacture year.
const MinManufactureYear = 1900

// RegisterCustomValidations registers the domain specific rules on the
// shared validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("cpf", isCPF); err != nil {
		return err
	}
	if err := v.RegisterValidation("br_state", isBrazilianState); err != nil {
		return err
	}
	if err := v.RegisterValidation("year_range", isManufactureYear); err != nil {
		return err
	}
	return nil
}

func isCPF(fl validator.FieldLevel) bool {
	return utils.IsValidCPF(fl.Field().String())
}

func isBrazilianState(fl validator.FieldLevel) bool {
	return brStateRegex.MatchString(fl.Field().String())
}

// isManufactureYear bounds the year to [1900, current year]; the upper
// bound moves with the clock, which the static max= rule cannot express.
func isManufactureYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= MinManufactureYear && year <= int64(time.Now().Year())
}
