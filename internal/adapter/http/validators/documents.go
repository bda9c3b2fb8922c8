// Package validators registers Brazilian document rules on gin's binding
// engine so request DTOs can use them as struct tags.
package validators

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register installs the cnpj and cpf rules. Call once at startup, before the
// first request is bound.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return ValidCNPJ(fl.Field().String())
	})
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return ValidCPF(fl.Field().String())
	})
}

// ValidCNPJ runs the full CNPJ check-digit validation. Punctuation is
// ignored; repeated-digit sequences are rejected.
func ValidCNPJ(value string) bool {
	digits := onlyDigits(value)
	if len(digits) != 14 || allSame(digits) {
		return false
	}

	firstWeights := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

	if checkDigit(digits[:12], firstWeights) != int(digits[12]-'0') {
		return false
	}
	return checkDigit(digits[:13], secondWeights) == int(digits[13]-'0')
}

// ValidCPF runs the full CPF check-digit validation.
func ValidCPF(value string) bool {
	digits := onlyDigits(value)
	if len(digits) != 11 || allSame(digits) {
		return false
	}

	firstWeights := []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights := []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

	if cpfCheckDigit(digits[:9], firstWeights) != int(digits[9]-'0') {
		return false
	}
	return cpfCheckDigit(digits[:10], secondWeights) == int(digits[10]-'0')
}

func checkDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func cpfCheckDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

func onlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
