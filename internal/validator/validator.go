package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	once     sync.Once
	validate *govalidator.Validate
	// trans is the singleton English translator for validation errors.
	trans ut.Translator
)

// Error is returned when a request struct fails validation. No HTTP call is
// made for a request that fails here.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// engine builds the validator once, reading rules from `binding` tags and
// naming fields after their JSON keys.
func engine() *govalidator.Validate {
	once.Do(func() {
		v := govalidator.New(govalidator.WithRequiredStructEnabled())
		v.SetTagName("binding")

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		validate = v
	})
	return validate
}

// Struct validates a request struct and returns *Error on failure.
func Struct(v interface{}) error {
	if err := engine().Struct(v); err != nil {
		return &Error{Fields: TranslateErrors(err)}
	}
	return nil
}

// Var validates a single value, such as a path ID, under the given field name.
func Var(field string, value interface{}, tag string) error {
	err := engine().Var(value, tag)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[field] = field + fe.Translate(trans)
		}
	} else {
		fields[field] = fmt.Sprintf("%s: %v", field, err)
	}
	return &Error{Fields: fields}
}

// TranslateErrors takes a validation error and returns a map of
// field name to human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}
