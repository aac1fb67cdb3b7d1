package registration

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return err.Error()
	}

	ve := vErrs[0]
	switch ve.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", ve.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", ve.Field(), ve.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", ve.Field(), ve.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", ve.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", ve.Field(), ve.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as YYYY-MM-DD", ve.Field())
	default:
		return fmt.Sprintf("%s is invalid", ve.Field())
	}
}
