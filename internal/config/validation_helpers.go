package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	popperrors "github.com/alexisbeaulieu97/popper/pkg/errors"
)

// ValidateStruct runs the shared validator over v and normalises the first
// failure into a ValidationError.
func ValidateStruct(v any) error {
	return convertValidationError(validatorInstance().Struct(v))
}

// convertValidationError normalizes validator errors into popper validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return popperrors.NewValidationError(field, msg, err)
	}

	return popperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// the YAML path, e.g. "overlay.z_index" or "demo.items[2]".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.SplitN(fe.Namespace(), ".", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return strings.ToLower(parts[0])
}
