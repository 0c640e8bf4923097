package starknet

import (
	"reflect"
	"sync"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

// Validator returns a singleton that can be used to validate the catalogue
// shapes
func Validator() *validator.Validate {
	once.Do(func() {
		v = validator.New()

		// Register felts to use their string representation for validation
		// purposes
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			switch f := field.Interface().(type) {
			case felt.Felt:
				return f.String()
			case *felt.Felt:
				return f.String()
			}
			panic("not a felt")
		}, felt.Felt{}, &felt.Felt{})
	})
	return v
}

type validatable interface {
	Validate() error
}

// validateShape runs the Validate hook of v if it has one, otherwise the
// struct tags of v. Non-struct shapes are accepted as is.
func validateShape(v any) error {
	if hook, ok := v.(validatable); ok {
		return hook.Validate()
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return Validator().Struct(v)
}

// ValidateRequest checks a query or request body before it is sent.
func ValidateRequest(v any) error {
	return asMalformed(ErrMalformedRequest, validateShape(v))
}

// ValidateResponse checks a decoded response body.
func ValidateResponse(v any) error {
	return asMalformed(ErrMalformedResponse, validateShape(v))
}
