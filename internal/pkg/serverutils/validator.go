package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and folds failures into a
// single 400 with the offending fields listed.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fields []string
	var vErrs validator.ValidationErrors
	if ok := errors.As(err, &vErrs); ok {
		for _, fe := range vErrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
	}
	if len(fields) == 0 {
		return NewBadRequestError("invalid request body")
	}
	return NewBadRequestError("validation failed: " + strings.Join(fields, ", "))
}
