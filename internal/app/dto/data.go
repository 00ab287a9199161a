package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate = validator.New()
	trans    ut.Translator

	initOnce sync.Once
	initErr  error
)

// Response is the generic {"message": ...} body.
type Response struct {
	Message string `json:"message"`
}

// ValidationError reports the first field of a record that did not match
// its declared shape.
type ValidationError struct {
	Record string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s: %s", e.Record, e.Field, e.Reason)
}

// InitValidator registers the English translations and json field naming.
// It is safe to call more than once.
func InitValidator() error {
	initOnce.Do(func() {
		uni := ut.New(en.New(), en.New())
		trans, _ = uni.GetTranslator("en")

		if err := enTranslations.RegisterDefaultTranslations(Validate, trans); err != nil {
			initErr = err
			return
		}

		Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})

	return initErr
}

func ValidateSingleError(req interface{}) error {
	if err := InitValidator(); err != nil {
		return err
	}

	if err := Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}

// validateRecord runs the struct tag rules of a decoded record.
func validateRecord(record string, v interface{}) error {
	if err := InitValidator(); err != nil {
		return err
	}

	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate %s: %w", record, err)
	}

	return &ValidationError{
		Record: record,
		Field:  fieldPath(ve[0].Namespace()),
		Reason: ve[0].Translate(trans),
	}
}

// fieldPath turns a validator namespace such as
// "Favorite.attributes.airport.AirportAttributes.latitude" into the json path
// "attributes.airport.latitude". Go names (root and embedded types) start
// with an upper case letter, json names here never do.
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")

	kept := parts[:0]
	for _, part := range parts {
		if part == "" || unicode.IsUpper([]rune(part)[0]) {
			continue
		}
		kept = append(kept, part)
	}

	return strings.Join(kept, ".")
}
