package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/MKhiriev/rental-blocklist/internal/civilid"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// custom validation tags
const (
	notBlankTag = "notblank"
	civilIDTag  = "civilid"
)

var customMessages = map[string]string{
	notBlankTag: "{0} cannot be blank",
	civilIDTag:  "{0} must be a 12-digit civil id",
}

// RequestValidator validates structs tagged with `validate` rules and
// translates failures to English messages.
type RequestValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewRequestValidator returns a Validator with the english translations,
// JSON field names and the custom "notblank" and "civilid" tags registered.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = validate.RegisterValidation(civilIDTag, civilIDShapeValidation)

	for tag, message := range customMessages {
		_ = validate.RegisterTranslation(tag, translator, registerMessage(tag, message), translateField)
	}

	return &RequestValidator{validate: validate, translator: translator}
}

// Validate checks obj against its struct tags. When fields are given only
// those fields (Go field names) are validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return ErrUnsupportedType
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrs := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs[fe.Field()] = fe.Translate(v.translator)
	}

	return &RequestError{Fields: fieldErrs}
}

func registerMessage(tag, message string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, message, true)
	}
}

func translateField(trans ut.Translator, fe validator.FieldError) string {
	msg, err := trans.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}
	return msg
}

// Custom Validators

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

// civilIDShapeValidation only checks the 12-digit shape. Date and age rules
// are applied by the services, which report them with distinct errors.
func civilIDShapeValidation(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	return ok && civilid.WellFormed(str)
}
