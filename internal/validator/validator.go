package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	maxPasswordLength = 128
	minPasswordLength = 8
	maxEmailLength    = 254
	MaxTitleLength    = 200
	MaxContentLength  = 100_000
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

func Validate(s any) error {
	return validate.Struct(s)
}

// UpdatePostRequest é o corpo do PUT /posts/{id}. Slug ausente de propósito:
// é sempre derivado do título no servidor.
type UpdatePostRequest struct {
	NewTitle   string `json:"newTitle" validate:"required,min=1,max=200"`
	NewContent string `json:"newContent" validate:"max=100000"`
}

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"max=100000"`
}

// ValidatePostPayload traduz os erros do validator para mensagens por campo.
func ValidatePostPayload(s any) ValidationResult {
	result := ValidationResult{Valid: true, Errors: []ValidationError{}}

	err := validate.Struct(s)
	if err == nil {
		return result
	}

	result.Valid = false
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.Errors = append(result.Errors, ValidationError{Field: "", Message: "payload inválido"})
		return result
	}

	for _, fe := range fieldErrs {
		msg := ""
		switch fe.Tag() {
		case "required", "min":
			msg = "campo obrigatório"
		case "max":
			msg = fmt.Sprintf("campo muito longo (máximo %s caracteres)", fe.Param())
		default:
			msg = "valor inválido"
		}
		result.Errors = append(result.Errors, ValidationError{
			Field:   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
			Message: msg,
		})
	}
	return result
}

func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email é obrigatório")
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("email muito longo (máximo %d caracteres)", maxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("formato de email inválido")
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("senha é obrigatória")
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("senha deve ter pelo menos %d caracteres", minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("senha muito longa (máximo %d caracteres)", maxPasswordLength)
	}
	return nil
}

func ValidateRegistration(email, password string) ValidationResult {
	result := ValidationResult{Valid: true, Errors: []ValidationError{}}

	if err := ValidateEmail(email); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{Field: "email", Message: err.Error()})
	}

	if err := ValidatePassword(password); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{Field: "password", Message: err.Error()})
	}

	return result
}
