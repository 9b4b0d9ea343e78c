package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"misteri/pkg/logger"
	"misteri/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// ViewValidator checks the invariants normalized view models promise the UI.
type ViewValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewViewValidator(log *logger.Logger) *ViewValidator {
	v := validator.New()

	if err := v.RegisterValidation("clean_text", validateCleanText); err != nil {
		log.Fatal("Failed to register 'clean_text' validator", "error", err)
	}

	log.Debug("View validator initialized")

	return &ViewValidator{
		validate: v,
		logger:   log,
	}
}

// validateCleanText accepts strings that carry no surrounding whitespace.
func validateCleanText(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == strings.TrimSpace(s)
}

func (v *ViewValidator) ValidateRecipe(r *model.Recipe) error {
	return v.check(r)
}

func (v *ViewValidator) ValidateCategory(c *model.Category) error {
	return v.check(c)
}

func (v *ViewValidator) ValidateProfile(p *model.Profile) error {
	return v.check(p)
}

func (v *ViewValidator) check(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *ViewValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s must not be empty", err.Namespace())
		case "max":
			message = fmt.Sprintf("%s must hold at most %s entries", err.Namespace(), err.Param())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Namespace(), err.Param())
		case "clean_text":
			message = fmt.Sprintf("%s must not have surrounding whitespace", err.Namespace())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
