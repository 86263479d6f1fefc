package forms

import "github.com/go-playground/validator/v10"

// RecordKind accepts the collection names known to isKind.
func RecordKind(isKind func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return isKind(value)
	}
}
