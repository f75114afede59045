package validator

import (
	"fmt"
	"io"
	"reflect"
	"suitespot/shared/constant"
	"suitespot/shared/failure"
	"time"

	val "github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// validateLayout accepts empty strings so that it composes with omitempty and required.
func validateLayout(layout string) val.Func {
	return func(fl val.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}

		_, err := time.Parse(layout, value)

		return err == nil
	}
}

// validateMoney accepts decimal strings that are not negative. decimal.Decimal
// fields reach it as strings through decimalValue.
func validateMoney(fl val.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	amount, err := decimal.NewFromString(value)

	return err == nil && !amount.IsNegative()
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}

	return nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	rules := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"date":  validateLayout(constant.DateOnlyFormat),
		"clock": validateLayout(constant.ClockFormat),
		"money": validateMoney,
	}

	for tag, fn := range rules {
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
