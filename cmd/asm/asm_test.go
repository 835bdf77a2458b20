package asm

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/Manu343726/rvasm/pkg/assembler"
	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func disableColors(t *testing.T) {
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })
}

func newTestSession(t *testing.T) (*session, *mc.Assembler) {
	disableColors(t)

	config := assembler.DefaultConfig()
	single, err := mc.NewAssembler(config.AssemblerSettings())
	require.NoError(t, err)

	return &session{
		config:   config,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		renderer: assembler.NewRenderer(config.Format, false),
		closer:   io.NopCloser(nil),
	}, single
}

func TestScanWords(t *testing.T) {
	assert.Equal(t, []string{"003100b3"}, scanWords("003100b3      // add x1, x2, x3"))
	assert.Equal(t, []string{"13", "0x8067"}, scanWords("  13 0x8067 ; two words"))
	assert.Empty(t, scanWords("; nothing"))
}

func TestDisassembleTokens(t *testing.T) {
	disableColors(t)

	var out bytes.Buffer
	unknown, err := disassembleTokens(&out, []string{"003100b3", "00000073"}, false)
	require.NoError(t, err)

	assert.Equal(t, 1, unknown)
	assert.Equal(t, "003100b3    add x1, x2, x3\n00000073    unknown\n", out.String())

	out.Reset()
	_, err = disassembleTokens(&out, []string{"0x00a00293", "0x00008067"}, true)
	require.NoError(t, err)
	assert.Equal(t, "addi\njalr\n", out.String())

	_, err = disassembleTokens(&out, []string{"zzz"}, true)
	assert.ErrorIs(t, err, mc.ErrInvalidWord)
}

func TestDescribeEncoding(t *testing.T) {
	session, single := newTestSession(t)

	text, err := describeEncoding(session, single, "ADD x1, x2, x3 ; sum", false, false)
	require.NoError(t, err)
	assert.Equal(t, "003100b3      // add x1, x2, x3\n", text)

	text, err = describeEncoding(session, single, "beq x1, x2, 8", true, true)
	require.NoError(t, err)
	assert.Contains(t, text, "00208463")
	assert.Contains(t, text, "funct3 000")
	assert.Contains(t, text, "word: 0x00208463")

	_, err = describeEncoding(session, single, "foo x1", false, false)
	assert.Error(t, err)
}

func TestCompleteMnemonic(t *testing.T) {
	_, single := newTestSession(t)

	assert.Equal(t, []string{"beq"}, completeMnemonic(single, "be"))
	assert.Equal(t, []string{"sll", "slli", "slt", "slti", "sltiu", "sltu"}, completeMnemonic(single, "sl"))
	assert.Contains(t, completeMnemonic(single, "q"), "quit")
	assert.Contains(t, completeMnemonic(single, "N"), "nop")
	assert.Nil(t, completeMnemonic(single, "add x1"))
}

func TestReplState_Execute(t *testing.T) {
	session, single := newTestSession(t)
	state := &replState{session: session, single: single}

	var out bytes.Buffer

	assert.True(t, state.execute(&out, "nop"))
	assert.Equal(t, "00000013      // nop\n", out.String())

	out.Reset()
	assert.True(t, state.execute(&out, "add x1"))
	assert.Contains(t, out.String(), "wrong number of operands")

	out.Reset()
	assert.True(t, state.execute(&out, "; just a comment"))
	assert.Empty(t, out.String())

	assert.True(t, state.execute(&out, "fields"))
	assert.True(t, state.fields)

	out.Reset()
	assert.True(t, state.execute(&out, "help"))
	assert.Equal(t, replHelp+"\n", out.String())
	assert.Equal(t, replHelp, replCmd.Long)

	assert.False(t, state.execute(&out, "quit"))
	assert.False(t, state.execute(&out, " EXIT "))
}
