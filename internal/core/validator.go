package core

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"wnspush/internal/types"
)

// Validator wraps go-playground/validator. Field names in reported errors
// are the JSON names, so clients see the names they sent.
type Validator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewValidator creates a Validator.
func NewValidator(logger *slog.Logger) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	return &Validator{validate: v, logger: logger}
}

// ValidateStruct checks s against its validate tags. Failures are returned
// as a validation_invalid_request AppError whose details map each offending
// field (dotted JSON path) to the rule it broke.
func (v *Validator) ValidateStruct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: a programming error, not bad input.
		if v.logger != nil {
			v.logger.Error("struct validation misuse", "error", err)
		}
		return types.NewAppError(types.ErrCodeInternalUnexpected, "request could not be validated", err)
	}

	fields := make(map[string]string, len(fieldErrs))
	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fieldPath(fe)
		fields[name] = describe(fe)
		names = append(names, name)
	}
	sort.Strings(names)

	return types.NewAppErrorWithDetails(
		types.ErrCodeValidationInvalidRequest,
		fmt.Sprintf("invalid request: %s %s", names[0], fields[names[0]]),
		err,
		map[string]any{"fields": fields},
	)
}

// fieldPath drops the root struct name from the namespace ("Request.images[0].src"
// becomes "images[0].src").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "url":
		return "must be a valid URL"
	case "startswith":
		return "must start with " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
