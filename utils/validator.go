package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"eduhub/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("trimmed", validateTrimmed)
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("http_url", validateHTTPURL)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct using validator tags
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// ValidateFilePayload enforces the file submission contract on top of
// the tag-level checks: fully empty source links are dropped, a link
// with only one of title/url filled fails, and the result must carry at
// least one attachment or one well-formed link. Returns the normalized
// link slice to persist.
func ValidateFilePayload(req *models.FileRequest) ([]models.SourceLink, error) {
	links := make([]models.SourceLink, 0, len(req.SourceLinks))
	for _, link := range req.SourceLinks {
		if link.IsEmpty() {
			continue
		}
		if strings.TrimSpace(link.Title) == "" {
			return nil, errors.New("sourceLinks: a link with a URL must also have a title")
		}
		if strings.TrimSpace(link.URL) == "" {
			return nil, errors.New("sourceLinks: a link with a title must also have a URL")
		}
		if !link.IsWellFormed() {
			return nil, errors.New("sourceLinks: URL must start with http:// or https://")
		}
		if len(link.Title) > 100 {
			return nil, errors.New("sourceLinks: title must be at most 100 characters")
		}
		if len(link.Description) > 200 {
			return nil, errors.New("sourceLinks: description must be at most 200 characters")
		}
		links = append(links, link)
	}

	if len(req.Attachments) == 0 && len(links) == 0 {
		return nil, errors.New("a file needs at least one attachment or one source link")
	}

	return links, nil
}

// formatValidationErrors formats validation errors for better readability
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, getValidationMessage(e))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}

// getValidationMessage returns a user-friendly validation message
func getValidationMessage(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "http_url":
		return fmt.Sprintf("%s must start with http:// or https://", field)
	case "trimmed":
		return fmt.Sprintf("%s must not be empty", field)
	case "role":
		return fmt.Sprintf("%s must be a valid role", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// Custom validation functions

func validateTrimmed(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.RoleGuest, models.RoleStudent, models.RoleModerator, models.RoleAdmin:
		return true
	}
	return false
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	u := fl.Field().String()
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
