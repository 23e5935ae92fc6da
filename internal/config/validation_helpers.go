package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	tserrors "github.com/alexisbeaulieu97/themeswitch/pkg/errors"
)

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return tserrors.NewValidationError("config", "configuration is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError normalizes validator errors into themeswitch validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return tserrors.NewValidationError(field, msg, err)
	}

	return tserrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct name from the namespace, leaving the
// dotted YAML path (for example "log.level").
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[i+1:]
		}
	}
	return ns
}
