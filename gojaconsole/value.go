package gojaconsole

import (
	"reflect"

	"github.com/dop251/goja"

	"github.com/philipp01105/jsconsole/core"
)

// ThrownError carries a JavaScript exception raised while the console was
// converting a value, so it can be rethrown into the script unchanged.
type ThrownError struct {
	Value goja.Value
}

func (e *ThrownError) Error() string {
	if e.Value == nil {
		return "undefined"
	}
	return e.Value.String()
}

// value adapts a goja.Value to core.Value
type value struct {
	v goja.Value
}

// Wrap converts goja values to console values
func Wrap(values []goja.Value) []core.Value {
	out := make([]core.Value, len(values))
	for i, v := range values {
		out[i] = value{v: v}
	}
	return out
}

// ToString runs the script's ToString conversion, which may call a
// user-defined toString and throw.
func (v value) ToString() (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch x := r.(type) {
			case *goja.Exception:
				err = &ThrownError{Value: x.Value()}
			case goja.Value:
				err = &ThrownError{Value: x}
			default:
				panic(r)
			}
		}
	}()
	if v.v == nil {
		return "undefined", nil
	}
	return v.v.String(), nil
}

// ToBoolean reports the truthiness of the value
func (v value) ToBoolean() bool {
	return v.v != nil && v.v.ToBoolean()
}

var stringType = reflect.TypeOf("")

// IsString reports whether the value is a string primitive; String objects
// are not.
func (v value) IsString() bool {
	if v.v == nil {
		return false
	}
	if _, isObject := v.v.(*goja.Object); isObject {
		return false
	}
	return v.v.ExportType() == stringType
}
