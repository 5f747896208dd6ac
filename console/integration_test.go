package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/jsconsole/console"
	"github.com/philipp01105/jsconsole/core"
	"github.com/philipp01105/jsconsole/handler"
	"github.com/philipp01105/jsconsole/logger"
)

var _ console.Client = (*logger.Client)(nil)

func TestConsole_WithLoggerClient(t *testing.T) {
	mem := handler.NewMemoryHandler(0)
	c := console.New(core.StackFunc(func() []string {
		return []string{"", "outer", "inner", "trace"}
	}))
	c.SetClient(logger.NewBuilder().WithHandler(mem).Build())

	require.NoError(t, c.Log(core.Values("%s is", "x")...))
	require.NoError(t, c.Count(core.String("100%")))
	require.NoError(t, c.CountReset(core.String("50%")))
	require.NoError(t, c.Assert(core.Values(false, 42)...))
	require.NoError(t, c.Trace(core.String("here")))

	entries := mem.Entries()
	require.Len(t, entries, 5)

	assert.Equal(t, "%s is x", entries[0].Message)
	assert.Equal(t, "100%: 1", entries[1].Message)
	assert.Equal(t, `"50%" doesn't have a count`, entries[2].Message)
	assert.Equal(t, core.AssertLevel, entries[3].Level)
	assert.Equal(t, []string{"Assertion failed", "42"}, entries[3].Args)
	assert.Equal(t, "here", entries[4].Message)
	assert.Equal(t, []string{"inner", "outer", core.AnonymousFunction}, entries[4].Stack)

	c.Clear()
	assert.Zero(t, mem.Len())
}
