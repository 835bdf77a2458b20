package mc

import (
	"testing"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/instructions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, statements ...string) *Program {
	assembler := newAssembler(t, DefaultAssemblerSettings())
	program := NewProgram()

	for _, statement := range statements {
		instr, err := assembler.ParseInstruction(statement)
		require.NoError(t, err)
		program.Add(instr)
	}

	return program
}

func TestProgram_Add(t *testing.T) {
	p := NewProgram()
	assert.Equal(t, 0, p.Len())

	instr, err := newAssembler(t, DefaultAssemblerSettings()).ParseInstruction("nop")
	require.NoError(t, err)

	result := p.Add(instr)

	assert.Same(t, p, result) // Fluent interface returns same pointer
	assert.Equal(t, 1, p.Len())
	assert.Same(t, instr, p.Instructions[0])
}

func TestProgram_Words(t *testing.T) {
	p := parseProgram(t, "nop", "ret", "addi x1, x2, 0", "jal x0, -4")

	words, err := p.Words(instructions.Encoder{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x00000013, 0x00008067, 0x00010093, 0xffdff06f}, words)
}

func TestProgram_Encode(t *testing.T) {
	p := parseProgram(t, "addi x5, x0, 10", "nop")

	words, err := p.Words(instructions.Encoder{})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x00a00293, 0x00000013}, words)

	encoded, err := p.Encode(instructions.Encoder{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x93, 0x02, 0xa0, 0x00, 0x13, 0x00, 0x00, 0x00}, encoded)
}

func TestProgram_EncodeStrict(t *testing.T) {
	p := parseProgram(t, "nop", "addi x1, x0, 4096")

	_, err := p.Encode(instructions.Encoder{Strict: true})
	assert.ErrorIs(t, err, instructions.ErrRange)
	assert.ErrorContains(t, err, "instruction 1")

	encoded, err := p.Encode(instructions.Encoder{})
	require.NoError(t, err)
	assert.Len(t, encoded, 8)
}

func TestProgram_EncodeEmpty(t *testing.T) {
	encoded, err := NewProgram().Encode(instructions.Encoder{})
	require.NoError(t, err)
	assert.Empty(t, encoded)
}
