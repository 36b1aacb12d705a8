package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"reserva/shared/failure"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var hourPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3])(:[0-5][0-9])?$`)

// registerHourValidation accepts a bare hour ("0".."23", leading zero
// allowed) or an "HH:MM" clock string that falls on a known hour.
func registerHourValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return hourPattern.MatchString(strings.TrimSpace(value))
}

// registerDateValidation accepts a calendar date in YYYY-MM-DD form.
func registerDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	parts := strings.Split(strings.TrimSpace(value), "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return false
	}

	for _, part := range parts {
		if _, err := strconv.Atoi(part); err != nil {
			return false
		}
	}

	return true
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("hour", registerHourValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("date", registerDateValidation)
	if err != nil {
		panic(err)
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

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
