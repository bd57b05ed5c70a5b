// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Field kinds validated by the catalog. The same table backs both the
// struct-tag validations and the service-side checks, so a field is
// never validated against two different patterns.
const (
	KindComicTitle = "comic_title"
	KindPersonName = "person_name"
	KindOrgName    = "org_name"
)

var fieldPatterns = map[string]*regexp.Regexp{
	// Letters, digits, whitespace and a restricted punctuation set.
	KindComicTitle: regexp.MustCompile(`^[A-Za-z0-9\s\-_,.:;()'"#]+$`),
	// Two or more whitespace-separated words, each starting with a
	// letter; initials ("Q.") and names like O'Neil or Byrne-Smith pass.
	KindPersonName: regexp.MustCompile(`^[A-Za-z][A-Za-z.'-]*(\s+[A-Za-z][A-Za-z.'-]*)+$`),
	// Free-form organization name.
	KindOrgName: regexp.MustCompile(`^[A-Za-z0-9\s\-_,.:;()'"!]+$`),
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation(KindComicTitle, patternValidation(KindComicTitle))
	validate.RegisterValidation(KindPersonName, patternValidation(KindPersonName))
	validate.RegisterValidation(KindOrgName, patternValidation(KindOrgName))
	validate.RegisterValidation("client_password", validateClientPassword)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// MatchKind reports whether the trimmed value matches the named field
// pattern. Unknown kinds never match.
func MatchKind(kind, value string) bool {
	pattern, ok := fieldPatterns[kind]
	if !ok {
		return false
	}
	return pattern.MatchString(strings.TrimSpace(value))
}

func patternValidation(kind string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return MatchKind(kind, fl.Field().String())
	}
}

// Password policy: 6-20 characters with at least one uppercase letter,
// one lowercase letter, one digit and one special character.
func validateClientPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 6 || len(password) > 20 {
		return false
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case KindComicTitle:
		return "Title may contain letters, digits, spaces and - _ , . : ; ( ) ' \" #"
	case KindPersonName:
		return e.Field() + " must be a full name of at least two words"
	case KindOrgName:
		return e.Field() + " contains unsupported characters"
	case "client_password":
		return "Password must be 6-20 characters with uppercase, lowercase, number, and special character"
	default:
		return e.Field() + " is invalid"
	}
}
