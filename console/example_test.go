package console_test

import (
	"os"

	"github.com/philipp01105/jsconsole/console"
	"github.com/philipp01105/jsconsole/core"
	"github.com/philipp01105/jsconsole/formatter"
	"github.com/philipp01105/jsconsole/handler"
	"github.com/philipp01105/jsconsole/logger"
)

func Example() {
	h := handler.NewWriterHandler(handler.WriterConfig{
		Writer:    os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{DisableTimestamp: true}),
	})

	stack := core.StackFunc(func() []string { return []string{"", "main", "trace"} })
	c := console.New(stack)
	c.SetClient(logger.NewBuilder().WithHandler(h).Build())

	_ = c.Log(core.Values("hello", 42)...)
	_ = c.Count()
	_ = c.Count()
	_ = c.CountReset(core.String("missing"))
	_ = c.Assert(core.Values(false, "oops")...)
	_ = c.Trace(core.String("checkpoint"))
	// Output:
	// [log] hello 42
	// [count] default: 1
	// [count] default: 2
	// [countReset] "missing" doesn't have a count
	// [assert] Assertion failed: oops
	// [trace] checkpoint
	//     at main
	//     at <anonymous>
}
