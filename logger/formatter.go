package logger

import "github.com/philipp01105/jsconsole/core"

// Formatter expands format directives in the first argument using the
// trailing arguments.
type Formatter interface {
	Format(args []core.Value) ([]core.Value, error)
}

// FormatterFunc adapts a function to a Formatter
type FormatterFunc func(args []core.Value) ([]core.Value, error)

// Format implements Formatter
func (f FormatterFunc) Format(args []core.Value) ([]core.Value, error) {
	return f(args)
}

// PassthroughFormatter returns its arguments unmodified. Directives such as
// %s are printed literally.
type PassthroughFormatter struct{}

// Format implements Formatter
func (PassthroughFormatter) Format(args []core.Value) ([]core.Value, error) {
	return args, nil
}
