package validator

import (
	"encoding/json"
	"fmt"
	"intake/shared/failure"
	"intake/shared/kana"
	"io"
	"reflect"
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate

	postalCodePattern = regexp.MustCompile(`^[0-9]{7}$`)
)

// Enum is implemented by closed string enumerations validated with the "enum" tag.
type Enum interface {
	IsValid() bool
}

func registerKatakanaValidation(field val.FieldLevel) bool {
	return kana.IsKatakana(field.Field().String())
}

func registerPostalCodeValidation(field val.FieldLevel) bool {
	return postalCodePattern.MatchString(field.Field().String())
}

func registerEnumValidation(field val.FieldLevel) bool {
	enum, ok := field.Field().Interface().(Enum)
	if !ok {
		return false
	}

	return enum.IsValid()
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	validations := map[string]val.Func{
		"katakana":   registerKatakanaValidation,
		"postalcode": registerPostalCodeValidation,
		"enum":       registerEnumValidation,
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// Decode only decodes the body. Used where validation must run later, on a
// normalized value.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return toFailure(err) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return toFailure(err) //nolint:wrapcheck
	}

	return nil
}
