package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const cartIDRules = "required,notblank,max=128,cartid"

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
	if err := v.RegisterValidation("cartid", validCartID); err != nil {
		panic(fmt.Sprintf("register cartid: %v", err))
	}
	return v
}

// validCartID accepts text Postgres can store in a VARCHAR column: valid
// UTF-8 without NUL bytes.
func validCartID(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}
