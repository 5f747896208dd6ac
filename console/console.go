package console

import (
	"strconv"

	"github.com/philipp01105/jsconsole/core"
)

const assertionFailed = "Assertion failed"

// Console implements the script-facing console methods for one realm. It
// owns the realm's count map and is not safe for concurrent use.
type Console struct {
	client   Client
	stack    core.StackProvider
	counters *core.CounterStore
}

// New creates a console reading call stacks from stack. A nil stack makes
// console.trace print empty stacks.
func New(stack core.StackProvider) *Console {
	return &Console{
		stack:    stack,
		counters: core.NewCounterStore(),
	}
}

// SetClient attaches the client output goes to; nil detaches it
func (c *Console) SetClient(client Client) {
	c.client = client
}

// Client returns the attached client, or nil
func (c *Console) Client() Client {
	return c.client
}

// Counter returns the current count for label and whether it was ever counted
func (c *Console) Counter(label string) (uint64, bool) {
	return c.counters.Get(label)
}

func (c *Console) emit(level core.Level, args []core.Value) error {
	if c.client == nil {
		return nil
	}
	return c.client.Logger(level, args)
}

// Debug implements console.debug
func (c *Console) Debug(args ...core.Value) error {
	return c.emit(core.DebugLevel, args)
}

// Error implements console.error
func (c *Console) Error(args ...core.Value) error {
	return c.emit(core.ErrorLevel, args)
}

// Info implements console.info
func (c *Console) Info(args ...core.Value) error {
	return c.emit(core.InfoLevel, args)
}

// Log implements console.log
func (c *Console) Log(args ...core.Value) error {
	return c.emit(core.LogLevel, args)
}

// Warn implements console.warn
func (c *Console) Warn(args ...core.Value) error {
	return c.emit(core.WarnLevel, args)
}

// Clear implements console.clear
func (c *Console) Clear() {
	if c.client != nil {
		c.client.Clear()
	}
}

// Trace implements console.trace. The stack excludes trace's own frame and
// lists the innermost frame first. Arguments, when given, are formatted and
// joined with spaces into the trace label.
func (c *Console) Trace(args ...core.Value) error {
	if c.client == nil {
		return nil
	}

	var frames []string
	if c.stack != nil {
		frames = c.stack.FunctionNames()
	}
	trace := core.BuildTrace(frames)

	if len(args) > 0 {
		formatted, err := c.client.Formatter(args)
		if err != nil {
			return err
		}
		label, err := core.Join(formatted)
		if err != nil {
			return err
		}
		trace = trace.WithLabel(label)
	}

	return c.client.PrintTrace(trace)
}

// countLabel returns the label argument of count/countReset
func countLabel(args []core.Value) (string, error) {
	if len(args) == 0 {
		return core.DefaultCountLabel, nil
	}
	return args[0].ToString()
}

// Count implements console.count
func (c *Console) Count(args ...core.Value) error {
	label, err := countLabel(args)
	if err != nil {
		return err
	}

	n := c.counters.Increment(label)
	concat := label + ": " + strconv.FormatUint(n, 10)
	return c.emit(core.CountLevel, []core.Value{core.String(concat)})
}

// CountReset implements console.countReset. Resetting a label that was
// never counted reports it instead of creating the counter.
func (c *Console) CountReset(args ...core.Value) error {
	label, err := countLabel(args)
	if err != nil {
		return err
	}

	if c.counters.Reset(label) {
		return nil
	}
	message := `"` + label + `" doesn't have a count`
	return c.emit(core.CountResetLevel, []core.Value{core.String(message)})
}

// Assert implements console.assert. The first argument is the condition;
// the rest is the data printed when it is falsy.
func (c *Console) Assert(args ...core.Value) error {
	if len(args) > 0 && args[0].ToBoolean() {
		return nil
	}

	var data []core.Value
	if len(args) > 1 {
		data = args[1:]
	}

	switch {
	case len(data) == 0:
		data = []core.Value{core.String(assertionFailed)}
	case !data[0].IsString():
		data = append([]core.Value{core.String(assertionFailed)}, data...)
	default:
		first, err := data[0].ToString()
		if err != nil {
			return err
		}
		concat := make([]core.Value, len(data))
		concat[0] = core.String(assertionFailed + ": " + first)
		copy(concat[1:], data[1:])
		data = concat
	}

	return c.emit(core.AssertLevel, data)
}
