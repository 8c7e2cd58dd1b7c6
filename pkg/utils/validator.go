package utils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/go-playground/validator/v10"
)

var imdbTitleURL = regexp2.MustCompile(`^https?://(www\.)?imdb\.com/title/(?<id>tt\d+)/?$`, regexp2.IgnoreCase)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("imdb_url", func(fl validator.FieldLevel) bool {
		return IsIMDbTitleURL(fl.Field().String())
	})
	return v
}

// IsIMDbTitleURL reports whether url points at an IMDb title page.
func IsIMDbTitleURL(url string) bool {
	ok, err := imdbTitleURL.MatchString(strings.TrimSpace(url))
	return err == nil && ok
}

// ExtractIMDbID returns the tt-identifier of an IMDb title URL, or "".
func ExtractIMDbID(url string) string {
	m, err := imdbTitleURL.FindStringMatch(strings.TrimSpace(url))
	if err != nil || m == nil {
		return ""
	}
	return strings.ToLower(m.GroupByName("id").String())
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "datetime":
		return fmt.Sprintf("Must be a date formatted as %s", err.Param())
	case "imdb_url":
		return "Please enter a valid IMDb URL (e.g., https://www.imdb.com/title/tt0111161/)"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string, sorted by field
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}
