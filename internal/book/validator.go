package book

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type authorInput struct {
	Author string `validate:"required"`
}

type priceUpdateInput struct {
	Title string  `validate:"required"`
	Price float64 `validate:"gt=0"`
}

type titleInput struct {
	Title string `validate:"required"`
}

type pageInput struct {
	PageSize  int `validate:"gte=1"`
	PageIndex int `validate:"gte=0"`
}

// validateStruct turns validator failures into ErrInvalidInput, or ErrUnsupportedField
// when an index key names a field outside the schema.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.StructField() == "Field" && fe.Tag() == "oneof" {
			return fmt.Errorf("%w: %q", ErrUnsupportedField, fe.Value())
		}
		msgs = append(msgs, message(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
