package helper

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"

	"members-only/models"
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	validate := validator.New()

	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{Validate: validate, Translator: translator}
}

// ValidateForm ...
// Apply the form's declared rules and return the failures in declaration
// order. messages overrides the translated default per field; the form is
// expected to have been sanitized already.
func (u *HTTPHelper) ValidateForm(form interface{}, messages map[string]string) []models.FieldError {
	err := u.Validate.Struct(form)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{Field: "", Message: err.Error()}}
	}

	errorTranslation := validationErrors.Translate(u.Translator)

	var fieldErrors []models.FieldError
	for _, fieldErr := range validationErrors {
		errKey := Underscore(fieldErr.StructField())
		message := messages[errKey]
		if message == "" {
			message = errorTranslation[fieldErr.Namespace()]
		}
		fieldErrors = append(fieldErrors, models.FieldError{Field: errKey, Message: message})
	}

	return fieldErrors
}

// SendServerError ...
// Render the generic error page for unexpected store or hashing failures.
func (u *HTTPHelper) SendServerError(c *gin.Context, err error) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"title": "Error",
		"error": err.Error(),
	})
}

// Underscore converts a struct field name to its snake_case form field name.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
