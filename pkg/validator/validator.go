package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks the struct's `validate` tags and reports every
// failing field at once.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errMsgs []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"field %s failed %q (param %q)", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param(),
		))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(errMsgs, "; "))
}
