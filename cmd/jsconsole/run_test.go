package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/jsconsole/config"
	"github.com/philipp01105/jsconsole/handler"
	"github.com/philipp01105/jsconsole/logger"
)

func TestRunScript(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.log")
	cfg := config.Default()
	cfg.Output = out
	cfg.DisableTime = true

	src := `
		console.log("hi", 1);
		console.count();
		console.assert(false, "oops");
	`
	require.NoError(t, runScript("test.js", src, cfg, true))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "[log] hi 1 session="), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "[count] default: 1"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "[assert] Assertion failed: oops"), lines[2])
}

func TestRunScript_UncaughtException(t *testing.T) {
	cfg := config.Default()
	cfg.Sink = config.SinkMemory

	err := runScript("bad.js", `console.log({ toString() { throw new Error("boom") } }, 1)`, cfg, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

type failingCloseHandler struct {
	*handler.MemoryHandler
	err error
}

func (h failingCloseHandler) Close() error {
	return h.err
}

func TestExecute_CloseFailure(t *testing.T) {
	errSync := errors.New("sync failed")
	h := failingCloseHandler{MemoryHandler: handler.NewMemoryHandler(0), err: errSync}
	client := logger.NewBuilder().WithHandler(h).Build()

	err := execute("ok.js", `console.log("done")`, client)
	assert.ErrorIs(t, err, errSync)
	assert.Equal(t, []string{"done"}, h.Messages())
}

func TestExecute_CloseFailureAfterException(t *testing.T) {
	errSync := errors.New("sync failed")
	h := failingCloseHandler{MemoryHandler: handler.NewMemoryHandler(0), err: errSync}
	client := logger.NewBuilder().WithHandler(h).Build()

	err := execute("bad.js", `throw new Error("boom")`, client)
	require.Error(t, err)
	assert.ErrorIs(t, err, errSync)
	assert.Contains(t, err.Error(), "boom")
}
