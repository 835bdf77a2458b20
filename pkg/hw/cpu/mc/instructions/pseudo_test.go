package instructions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPseudos_Expand(t *testing.T) {
	mnemonic, operands, err := Pseudos.Expand("nop", nil)
	require.NoError(t, err)
	assert.Equal(t, "addi", mnemonic)
	assert.Equal(t, []string{"x0", "x0", "0"}, operands)

	mnemonic, operands, err = Pseudos.Expand("RET", nil)
	require.NoError(t, err)
	assert.Equal(t, "jalr", mnemonic)
	assert.Equal(t, []string{"x0", "x1", "0"}, operands)
}

func TestPseudos_ExpansionIsNotShared(t *testing.T) {
	_, operands, err := Pseudos.Expand("nop", nil)
	require.NoError(t, err)
	operands[0] = "x5"

	_, operands, err = Pseudos.Expand("nop", nil)
	require.NoError(t, err)
	assert.Equal(t, "x0", operands[0])
}

func TestPseudos_RealInstructionsPassThrough(t *testing.T) {
	mnemonic, operands, err := Pseudos.Expand("add", []string{"x1", "x2", "x3"})
	require.NoError(t, err)
	assert.Equal(t, "add", mnemonic)
	assert.Equal(t, []string{"x1", "x2", "x3"}, operands)

	assert.False(t, Pseudos.Has("add"))
	assert.True(t, Pseudos.Has("nop"))
}

func TestPseudos_RejectOperands(t *testing.T) {
	_, _, err := Pseudos.Expand("nop", []string{"x1"})
	assert.ErrorIs(t, err, ErrArity)
}

func TestPseudos_All(t *testing.T) {
	all := Pseudos.All()
	require.Len(t, all, 2)
	assert.Equal(t, "nop", all[0].Mnemonic)
	assert.Equal(t, "ret", all[1].Mnemonic)
	assert.Equal(t, "ret -> jalr x0, x1, 0", all[1].String())
}

func TestNewPseudoTable_PanicsOnInconsistentExpansions(t *testing.T) {
	assert.Panics(t, func() {
		NewPseudoTable(Mnemonics, []*Pseudo{{Mnemonic: "halt", Canonical: "wfi"}})
	})

	assert.Panics(t, func() {
		NewPseudoTable(Mnemonics, []*Pseudo{{Mnemonic: "add", Canonical: "addi", Operands: []string{"x0", "x0", "0"}}})
	})

	assert.Panics(t, func() {
		NewPseudoTable(Mnemonics, []*Pseudo{{Mnemonic: "nop", Canonical: "addi", Operands: []string{"x0"}}})
	})

	assert.Panics(t, func() {
		NewPseudoTable(Mnemonics, []*Pseudo{
			{Mnemonic: "nop", Canonical: "addi", Operands: []string{"x0", "x0", "0"}},
			{Mnemonic: "nop", Canonical: "addi", Operands: []string{"x0", "x0", "0"}},
		})
	})
}
