package logger_test

import (
	"os"

	"github.com/philipp01105/jsconsole/core"
	"github.com/philipp01105/jsconsole/formatter"
	"github.com/philipp01105/jsconsole/handler"
	"github.com/philipp01105/jsconsole/logger"
)

// Create a client with the Builder pattern and run the Logger algorithm.
func ExampleNewBuilder() {
	h := handler.NewWriterHandler(handler.WriterConfig{
		Writer:    os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{DisableTimestamp: true}),
	})

	client := logger.NewBuilder().
		WithHandler(h).
		WithFields(logger.String("realm", "main")).
		Build()

	_ = client.Logger(core.LogLevel, core.Values("ready on port", 8080))
	_ = client.Logger(core.WarnLevel, core.Values("%d%% done", 50))
	// Output:
	// [log] ready on port 8080 realm=main
	// [warn] %d%% done 50 realm=main
}
