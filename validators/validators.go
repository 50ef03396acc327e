package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared struct validator used by the request-shape
// middlewares. Field names in error maps follow the json tags.
var Validate = validator.New()

func init() {
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Collect flattens validator errors into a field -> reason map.
func Collect(err error) map[string]string {
	errs := make(map[string]string)
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		for _, fe := range ves {
			errs[fe.Field()] = message(fe)
		}
	} else {
		errs["body"] = "Invalid request body!"
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required!"
	case "email":
		return "Invalid email!"
	case "max":
		return fmt.Sprintf("Must be at most %s characters long!", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s!", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s!", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s!", fe.Param())
	default:
		return fmt.Sprintf("Failed '%s' validation!", fe.Tag())
	}
}
