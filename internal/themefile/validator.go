package themefile

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Token names are lowercase dot-separated segments: "primary.lvl1".
	tokenPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*(\.[a-z0-9][a-z0-9_-]*)*$`)
)

// validatorInstance configures and returns the shared validator used for
// theme documents.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
			return tokenPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// translateValidation converts validator failures into the package's typed
// validation errors, keeping the first offending field.
func translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return swatcherrors.NewValidationError("", err.Error(), err)
	}
	first := verrs[0]
	field := strings.TrimPrefix(first.Namespace(), "File.")
	return swatcherrors.NewValidationError(field, "failed rule "+first.Tag(), err)
}
