package gojaconsole

import (
	"github.com/dop251/goja"
)

// nativeSource is the source name goja reports for frames of Go functions
const nativeSource = "<native>"

// Stack exposes a goja runtime's call stack as a core.StackProvider
type Stack struct {
	vm *goja.Runtime
}

// NewStack creates a stack provider for vm
func NewStack(vm *goja.Runtime) *Stack {
	return &Stack{vm: vm}
}

// FunctionNames returns the live frames outermost first. The innermost
// entry is the console builtin being executed; when goja did not record a
// frame for it, a placeholder is appended so the contract still holds.
func (s *Stack) FunctionNames() []string {
	frames := s.vm.CaptureCallStack(0, nil)
	names := make([]string, 0, len(frames)+1)
	for i := len(frames) - 1; i >= 0; i-- {
		names = append(names, frames[i].FuncName())
	}
	if len(frames) == 0 || frames[0].SrcName() != nativeSource {
		names = append(names, "trace")
	}
	return names
}
