// Package validators holds custom go-playground validators and input
// normalizers shared by the domain packages.
package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var cpfPattern = regexp.MustCompile(`^\d{11}$`)

// CPFValidation accepts exactly eleven digits. Check digits are not verified.
func CPFValidation(fl validator.FieldLevel) bool {
	return IsCPF(fl.Field().String())
}

// IsCPF reports whether value has the shape of a CPF.
func IsCPF(value string) bool {
	return cpfPattern.MatchString(value)
}
