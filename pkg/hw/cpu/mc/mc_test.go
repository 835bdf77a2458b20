package mc

import (
	"testing"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/instructions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor_LayoutClasses(t *testing.T) {
	assert.Equal(t, []instructions.OpcodeClass{instructions.OpcodeClass_OP}, Descriptor.LayoutClasses(instructions.RFormat{}))
	assert.Equal(t, []instructions.OpcodeClass{instructions.OpcodeClass_AUIPC, instructions.OpcodeClass_LUI}, Descriptor.LayoutClasses(instructions.UFormat{}))
	assert.Len(t, Descriptor.LayoutClasses(instructions.IFormat{}), 3)
}

func TestDescriptor_LayoutsDocumentation(t *testing.T) {
	doc, err := Descriptor.LayoutsDocumentation(0)
	require.NoError(t, err)

	for _, layout := range []string{"R-type (OP)", "I-type", "S-type (STORE)", "B-type (BRANCH)", "U-type", "J-type (JAL)"} {
		assert.Contains(t, doc, layout)
	}

	assert.Contains(t, doc, "imm[20|10:1|11]")
	assert.Contains(t, doc, "offset[4:0]")
}

func TestDescriptor_Documentation(t *testing.T) {
	doc, err := Descriptor.DocString()
	require.NoError(t, err)

	assert.Contains(t, doc, "total implemented instructions: 37")
	assert.Contains(t, doc, "total integer registers: 32")
	assert.Contains(t, doc, "nop -> addi x0, x0, 0")

	for _, mnemonic := range instructions.Mnemonics.Names() {
		assert.Contains(t, doc, mnemonic)
	}
}

func TestDescriptor_Summary(t *testing.T) {
	summary, err := Descriptor.Summary()
	require.NoError(t, err)

	assert.Equal(t, 32, summary.InstructionBits)
	assert.Equal(t, 7, summary.OpcodeBits)
	require.Len(t, summary.Instructions, 37)
	require.Len(t, summary.PseudoInstructions, 2)

	add := summary.Instructions[0]
	assert.Equal(t, InstructionSummary{
		Mnemonic:    "add",
		Syntax:      "add rd, rs1, rs2",
		Layout:      "R",
		Opcode:      "0110011",
		Funct3:      "000",
		Funct7:      "0000000",
		Description: "rd = rs1 + rs2",
	}, add)

	for _, instruction := range summary.Instructions {
		if instruction.Layout == "U" || instruction.Layout == "J" {
			assert.Empty(t, instruction.Funct3, instruction.Mnemonic)
			assert.Empty(t, instruction.Funct7, instruction.Mnemonic)
		}
	}
}

func TestDescriptor_RegistersDocumentation(t *testing.T) {
	doc := Descriptor.RegistersDocumentation(0)

	assert.Contains(t, doc, "x0   zero  hard-wired zero\n")
	assert.Contains(t, doc, "x2   sp    stack pointer\n")
	assert.Contains(t, doc, "x31")
}
