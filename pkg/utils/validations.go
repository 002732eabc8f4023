package utils

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address is well-formed and at most 255
// characters.
func ValidEmail(email string) bool {
	if len(email) > 255 {
		return false
	}
	return emailPattern.MatchString(strings.TrimSpace(email))
}

type CustomValidator struct {
	Validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	Validator := &CustomValidator{validator.New()}
	Validator.ValidatorRegistery()
	return Validator
}

// RegisterGinValidations installs the custom tags on gin's binding
// engine so they can be used in struct binding tags.
func RegisterGinValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		c := &CustomValidator{Validator: v}
		c.ValidatorRegistery()
	}
}

func (c *CustomValidator) ValidatorRegistery() {
	c.Validator.RegisterValidation("isemail", c.IsValidEmail)
	c.Validator.RegisterValidation("isskintype", c.IsValidSkinType)
}

func (c *CustomValidator) IsValidEmail(fl validator.FieldLevel) bool {
	return ValidEmail(fl.Field().String())
}

func (c *CustomValidator) IsValidSkinType(fl validator.FieldLevel) bool {
	return ValidSkinType(fl.Field().String())
}

// ValidSkinType checks the fixed skin type enum.
func ValidSkinType(skinType string) bool {
	switch skinType {
	case "normal", "dry", "oily", "combination", "sensitive", "mature":
		return true
	}
	return false
}
