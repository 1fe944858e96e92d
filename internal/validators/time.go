package validators

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsHHMM accepts zero-padded 24h times such as "09:30".
func IsHHMM(s string) bool {
	return hhmmPattern.MatchString(strings.TrimSpace(s))
}

func validateHHMM(fl validator.FieldLevel) bool {
	return IsHHMM(fl.Field().String())
}

// Register installs the custom tags on v.
func Register(v *validator.Validate) error {
	return v.RegisterValidation("hhmm", validateHHMM)
}

// RegisterBindings installs the custom tags on gin's binding engine.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return Register(v)
}
