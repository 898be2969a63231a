package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
)

// Validator checks typed values against their `validate` tags and reports
// every failing field at once.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	commonTags := []string{
		"json",
		"bson",
		"query",
		"form",
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range commonTags {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{
		validate: validate,
	}
}

// Validate returns a *models.ValidationError listing every violated
// constraint, or nil.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate struct: %w", err)
	}

	out := &models.ValidationError{}
	for _, fe := range verrs {
		out.Add(fieldPath(fe), reason(fe))
	}
	return out
}

// fieldPath strips the root struct name from the namespace,
// e.g. "DreamRequest.user_email" becomes "user_email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
