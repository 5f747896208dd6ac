package gojaconsole

import (
	"github.com/dop251/goja"
	"github.com/pkg/errors"

	"github.com/philipp01105/jsconsole/console"
	"github.com/philipp01105/jsconsole/core"
)

// New creates a console whose traces read vm's call stack
func New(vm *goja.Runtime) *console.Console {
	return console.New(NewStack(vm))
}

// Bind installs c as the global "console" object of vm. Errors returned by
// console methods are thrown into the script: exceptions raised by a
// value's toString are rethrown as they were, other failures become Go
// errors.
func Bind(vm *goja.Runtime, c *console.Console) error {
	obj := vm.NewObject()

	methods := map[string]func(...core.Value) error{
		"debug":      c.Debug,
		"error":      c.Error,
		"info":       c.Info,
		"log":        c.Log,
		"warn":       c.Warn,
		"trace":      c.Trace,
		"count":      c.Count,
		"countReset": c.CountReset,
		"assert":     c.Assert,
	}
	for name, method := range methods {
		method := method
		fn := func(call goja.FunctionCall) goja.Value {
			if err := method(Wrap(call.Arguments)...); err != nil {
				throw(vm, err)
			}
			return goja.Undefined()
		}
		if err := obj.Set(name, fn); err != nil {
			return errors.Wrapf(err, "binding console.%s", name)
		}
	}

	clearFn := func(goja.FunctionCall) goja.Value {
		c.Clear()
		return goja.Undefined()
	}
	if err := obj.Set("clear", clearFn); err != nil {
		return errors.Wrap(err, "binding console.clear")
	}

	return vm.Set("console", obj)
}

func throw(vm *goja.Runtime, err error) {
	var thrown *ThrownError
	if errors.As(err, &thrown) {
		panic(thrown.Value)
	}
	panic(vm.NewGoError(err))
}
