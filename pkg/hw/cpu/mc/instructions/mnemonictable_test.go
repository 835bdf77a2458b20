package instructions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMnemonics_ContainsBaseIntegerSet(t *testing.T) {
	assert.Equal(t, 37, Mnemonics.TotalInstructions())

	for _, mnemonic := range []string{
		"add", "sub", "sll", "slt", "sltu", "xor", "srl", "sra", "or", "and",
		"addi", "slti", "sltiu", "xori", "ori", "andi", "slli", "srli", "srai",
		"lb", "lh", "lw", "lbu", "lhu", "sb", "sh", "sw",
		"beq", "bne", "blt", "bge", "bltu", "bgeu",
		"lui", "auipc", "jal", "jalr",
	} {
		assert.True(t, Mnemonics.Has(mnemonic), mnemonic)
	}
}

func TestMnemonics_LookupIsCaseInsensitive(t *testing.T) {
	lower, err := Mnemonics.Lookup("addi")
	require.NoError(t, err)

	upper, err := Mnemonics.Lookup("ADDI")
	require.NoError(t, err)

	assert.Same(t, lower, upper)
	assert.Equal(t, "addi rd, rs1, imm", lower.String())
}

func TestMnemonics_LookupUnknown(t *testing.T) {
	for _, mnemonic := range []string{"mul", "ecall", "", "nop"} {
		_, err := Mnemonics.Lookup(mnemonic)
		assert.ErrorIs(t, err, ErrUnknownMnemonic, mnemonic)
	}
}

func TestMnemonics_NamesAreSorted(t *testing.T) {
	names := Mnemonics.Names()
	require.Len(t, names, Mnemonics.TotalInstructions())
	assert.IsNonDecreasing(t, names)
	assert.Equal(t, names[0], Mnemonics.All()[0].Mnemonic)
}

func TestMnemonics_Match(t *testing.T) {
	srai, err := Mnemonics.Match(OpcodeClass_OP_IMM, 0b101, 0b0100000)
	require.NoError(t, err)
	assert.Equal(t, "srai", srai.Mnemonic)

	addi, err := Mnemonics.Match(OpcodeClass_OP_IMM, 0b000, 0b1111111)
	require.NoError(t, err)
	assert.Equal(t, "addi", addi.Mnemonic)

	jal, err := Mnemonics.Match(OpcodeClass_JAL, 0b111, 0b1010101)
	require.NoError(t, err)
	assert.Equal(t, "jal", jal.Mnemonic)

	_, err = Mnemonics.Match(OpcodeClass_OP, 0b000, 0b0000001)
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestMnemonics_OperandNames(t *testing.T) {
	tests := map[string]string{
		"add":   "add rd, rs1, rs2",
		"slli":  "slli rd, rs1, shamt",
		"lw":    "lw rd, rs1, offset",
		"sw":    "sw rs1, rs2, offset",
		"beq":   "beq rs1, rs2, offset",
		"lui":   "lui rd, imm",
		"jal":   "jal rd, offset",
		"jalr":  "jalr rd, rs1, imm",
		"auipc": "auipc rd, imm",
	}

	for mnemonic, expected := range tests {
		descriptor, err := Mnemonics.Lookup(mnemonic)
		require.NoError(t, err)
		assert.Equal(t, expected, descriptor.String())
	}
}

func TestMnemonics_Documentation(t *testing.T) {
	for _, descriptor := range Mnemonics.All() {
		doc, err := descriptor.Documentation(2)
		require.NoError(t, err, descriptor.Mnemonic)
		assert.Contains(t, doc, descriptor.Description)
		assert.Contains(t, doc, "bits")
	}

	beq, err := Mnemonics.Lookup("beq")
	require.NoError(t, err)

	doc, err := beq.Documentation(0)
	require.NoError(t, err)
	assert.Contains(t, doc, "B-type")
	assert.Contains(t, doc, "imm[4:1|11]")
	assert.Contains(t, doc, "1100011")
}

func TestNewMnemonicTable_PanicsOnInconsistentDescriptors(t *testing.T) {
	add := registerInstruction("add", 0b000, 0b0000000, "")

	tests := map[string][]*Descriptor{
		"repeated mnemonic": {add, registerInstruction("add", 0b001, 0b0000000, "")},
		"same encoding":     {add, registerInstruction("plus", 0b000, 0b0000000, "")},
		"uppercase":         {registerInstruction("ADD", 0b000, 0b0000000, "")},
		"wrong arity":       {{Mnemonic: "lui", Class: OpcodeClass_LUI, Operands: 3}},
		"funct3 overflow":   {registerInstruction("add", 0b1000, 0b0000000, "")},
		"funct7 overflow":   {registerInstruction("add", 0b000, 0b10000000, "")},
		"unsupported class": {{Mnemonic: "ecall", Class: OpcodeClass(0b1110011)}},
		"shift overlapping": {immediateInstruction("addi", OpcodeClass_OP_IMM, 0b001, ""), shiftInstruction("slli", 0b001, 0b0000000, "")},
	}

	for name, descriptors := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, func() {
				NewMnemonicTable(descriptors)
			})
		})
	}
}

func TestOpcodeClass_Format(t *testing.T) {
	tests := map[OpcodeClass]string{
		OpcodeClass_OP:     "R",
		OpcodeClass_OP_IMM: "I",
		OpcodeClass_LOAD:   "I",
		OpcodeClass_JALR:   "I",
		OpcodeClass_STORE:  "S",
		OpcodeClass_BRANCH: "B",
		OpcodeClass_LUI:    "U",
		OpcodeClass_AUIPC:  "U",
		OpcodeClass_JAL:    "J",
	}

	for class, expected := range tests {
		format, err := class.Format()
		require.NoError(t, err)
		assert.Equal(t, expected, format.Name(), class.String())
	}

	_, err := OpcodeClass(0).Format()
	assert.ErrorIs(t, err, ErrInternalLayout)
}
