package service

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func checkEmail(email string) error {
	if email == "" {
		return invalid("email", "Email is required")
	}
	if err := validate.Var(email, "email,max=254"); err != nil {
		return invalid("email", "Email is not a valid address")
	}
	return nil
}

func checkText(field, label, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, label+" is required")
	}
	if utf8.RuneCountInString(value) > max {
		return invalid(field, label+" is too long")
	}
	return nil
}
