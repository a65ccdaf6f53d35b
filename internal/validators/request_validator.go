// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/procurio/purchasing-automation/models"
)

// RequestValidator validates request structs declared with `validate` tags.
// Field names in violations come from the struct's `json` tags, so clients
// see the same names they sent.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks value against its `validate` tags. When fields are given,
// only those struct fields are checked. Every violating field is reported,
// not just the first.
func (rv *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = rv.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = rv.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Non-struct input or a misconfigured rule: a programming error,
		// not a client one.
		return models.NewInternalFailure(err)
	}

	violations := make([]models.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, violationFromFieldError(fe))
	}

	return models.NewValidationFailure(violations...)
}

// violationFromFieldError maps a single tag failure onto a stable reason code.
func violationFromFieldError(fe validator.FieldError) models.FieldViolation {
	field := fieldPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		// A zero string means the key was present but blank; a nil pointer,
		// slice or map means the key was absent altogether.
		switch fe.Kind() {
		case reflect.String:
			return models.FieldViolation{
				Field:   field,
				Reason:  models.ReasonEmptyValue,
				Message: "must not be empty",
			}
		default:
			return models.FieldViolation{
				Field:   field,
				Reason:  models.ReasonMissing,
				Message: "is required",
			}
		}
	case "min", "max", "gt", "gte", "lt", "lte", "len", "oneof":
		return models.FieldViolation{
			Field:   field,
			Reason:  models.ReasonOutOfRange,
			Message: fmt.Sprintf("failed constraint %s=%s", fe.Tag(), fe.Param()),
		}
	case "email", "uuid", "url", "datetime", "startswith", "endswith", "alphanum", "numeric":
		return models.FieldViolation{
			Field:   field,
			Reason:  models.ReasonPatternMismatch,
			Message: fmt.Sprintf("does not match expected %s format", fe.Tag()),
		}
	default:
		return models.FieldViolation{
			Field:   field,
			Reason:  models.ReasonPatternMismatch,
			Message: fmt.Sprintf("failed validation rule %q", fe.Tag()),
		}
	}
}

// fieldPath strips the top-level struct name from a namespace like
// "RunPipelineRequest.csv_content", keeping nested paths intact.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
