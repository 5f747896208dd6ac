package core

// AnonymousFunction replaces empty function names in a trace
const AnonymousFunction = "<anonymous>"

// Trace is the record produced by console.trace
type Trace struct {
	// Label is the formatted trace data, valid when HasLabel is set
	Label    string
	HasLabel bool
	// Stack holds function names, innermost frame first
	Stack []string
}

// StackProvider exposes the host's execution context stack.
type StackProvider interface {
	// FunctionNames returns one name per live frame, outermost first. The
	// last element is the frame of the console builtin being executed.
	// Names may be empty.
	FunctionNames() []string
}

// StackFunc adapts a function to a StackProvider
type StackFunc func() []string

// FunctionNames implements StackProvider
func (f StackFunc) FunctionNames() []string { return f() }

// BuildTrace converts frame names, outermost first and ending with the
// console builtin's own frame, into a Trace without a label. The builtin's
// frame is dropped.
func BuildTrace(frames []string) Trace {
	var t Trace
	if len(frames) < 2 {
		return t
	}
	t.Stack = make([]string, 0, len(frames)-1)
	for i := len(frames) - 2; i >= 0; i-- {
		name := frames[i]
		if name == "" {
			name = AnonymousFunction
		}
		t.Stack = append(t.Stack, name)
	}
	return t
}

// WithLabel returns a copy of t labelled with label
func (t Trace) WithLabel(label string) Trace {
	t.Label = label
	t.HasLabel = true
	return t
}
