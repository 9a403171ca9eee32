package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// The validator cannot see through decimal.Decimal's unexported fields, so
// without this an absent amount satisfies "required" and a zero value flows
// into the services. Registering a type func makes decimal fields validate
// as their numeric value.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	}
}

func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// bindingErrorMessage turns a ShouldBindJSON error into a client-facing
// message, listing the failed fields and rules when the error carries them.
func bindingErrorMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Invalid request format: " + err.Error()
	}

	parts := make([]string, len(ve))
	for i, fe := range ve {
		parts[i] = fmt.Sprintf("field %s failed on rule %s", fe.Field(), fe.Tag())
	}
	return "Invalid request: " + strings.Join(parts, "; ")
}
