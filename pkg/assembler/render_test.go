package assembler

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_FormatWord(t *testing.T) {
	hex := NewRenderer(OutputFormat_Hex, false)
	binary := NewRenderer(OutputFormat_Binary, false)

	assert.Equal(t, "003100b3", hex.FormatWord(0x003100b3))
	assert.Equal(t, "ffdff06f", hex.FormatWord(0xffdff06f))
	assert.Equal(t, "00000000001100010000000010110011", binary.FormatWord(0x003100b3))
	assert.Len(t, binary.FormatWord(0), 32)
}

func TestRenderer_Render(t *testing.T) {
	result := Result{
		Line: Line{Number: 1, Statement: "add x1, x2, x3"},
		Word: 0x003100b3,
	}

	assert.Equal(t, "003100b3      // add x1, x2, x3", NewRenderer(OutputFormat_Hex, false).Render(result))
	assert.Equal(t, "00000000001100010000000010110011      // add x1, x2, x3", NewRenderer(OutputFormat_Binary, false).Render(result))
	assert.Contains(t, NewRenderer(OutputFormat_Hex, true).Render(result), "003100b3")
}

func TestRenderer_WriteSkipsFailedLines(t *testing.T) {
	results := []Result{
		{Line: Line{Number: 1, Statement: "nop"}, Word: 0x00000013},
		{Line: Line{Number: 2, Statement: "foo"}, Err: &LineError{Line: 2, Source: "foo", Err: errors.New("unknown")}},
		{Line: Line{Number: 3, Statement: "ret"}, Word: 0x00008067},
	}

	var out bytes.Buffer
	require.NoError(t, NewRenderer(OutputFormat_Hex, false).Write(&out, results))

	assert.Equal(t, "00000013      // nop\n00008067      // ret\n", out.String())
}

func TestRenderer_RenderError(t *testing.T) {
	err := errors.New("At line 1: broken")

	assert.Equal(t, "At line 1: broken", NewRenderer(OutputFormat_Hex, false).RenderError(err))
	assert.Contains(t, NewRenderer(OutputFormat_Hex, true).RenderError(err), "broken")
}

func TestColorMode_Enabled(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer file.Close()

	assert.True(t, ColorMode_Always.Enabled(file))
	assert.False(t, ColorMode_Never.Enabled(file))
	assert.False(t, ColorMode_Auto.Enabled(file))
}
