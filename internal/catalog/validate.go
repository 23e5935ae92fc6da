package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/themeswitch/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func productValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		validateInst = v
	})
	return validateInst
}

// ValidateProducts checks every record of a decoded payload and reports the
// first offending field, e.g. "products[3].price". Identifiers must be unique.
func ValidateProducts(products []Product) error {
	v := productValidator()
	seen := make(map[ProductID]int, len(products))

	for i, p := range products {
		if err := v.Struct(p); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				fe := verrs[0]
				field := fmt.Sprintf("products[%d].%s", i, trimNamespace(fe.Namespace()))
				return apperrors.NewValidationError(field, describe(fe), err)
			}
			return apperrors.NewValidationError(fmt.Sprintf("products[%d]", i), "invalid product", err)
		}
		if prev, dup := seen[p.ID]; dup {
			field := fmt.Sprintf("products[%d].id", i)
			return apperrors.NewValidationError(field, fmt.Sprintf("duplicate id %s (first seen at index %d)", p.ID, prev), nil)
		}
		seen[p.ID] = i
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// trimNamespace drops the leading struct name from "Product.rating.rate".
func trimNamespace(ns string) string {
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
