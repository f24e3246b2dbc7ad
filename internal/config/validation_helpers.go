package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	cuierrors "github.com/alexisbeaulieu97/cui/pkg/errors"
)

// ConvertValidationError normalizes validator errors into typed validation
// errors naming the offending YAML field.
func ConvertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return cuierrors.NewValidationError(field, msg, err)
	}

	return cuierrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, so
// "Config.frame_interval" becomes "frame_interval" and
// "Catalog.products[0].variants[1].price" becomes "products[0].variants[1].price".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
