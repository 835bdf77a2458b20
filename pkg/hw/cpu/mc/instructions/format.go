package instructions

import (
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Physical fields of a machine word, named after their register-register (R) meaning.
// The other layouts reuse the same bit ranges for immediate bits.
var (
	Field_Opcode = utils.BitField{Position: 0, Width: OpcodeBits}
	Field_Rd     = utils.BitField{Position: 7, Width: 5}
	Field_Funct3 = utils.BitField{Position: 12, Width: 3}
	Field_Rs1    = utils.BitField{Position: 15, Width: 5}
	Field_Rs2    = utils.BitField{Position: 20, Width: 5}
	Field_Funct7 = utils.BitField{Position: 25, Width: 7}
)

// Number of bits of a machine word
const InstructionBits = 32

// Contents of the physical fields of a machine word, excluding the opcode
type Fields struct {
	Funct7 uint32
	Rs2    uint32
	Rs1    uint32
	Funct3 uint32
	Rd     uint32
}

// Packs the fields and the opcode into a machine word. Every field is truncated to its width
func (f Fields) Compose(class OpcodeClass) uint32 {
	var word uint32

	Field_Funct7.Insert(&word, f.Funct7)
	Field_Rs2.Insert(&word, f.Rs2)
	Field_Rs1.Insert(&word, f.Rs1)
	Field_Funct3.Insert(&word, f.Funct3)
	Field_Rd.Insert(&word, f.Rd)
	Field_Opcode.Insert(&word, uint32(class))

	return word
}

// Splits a machine word into its physical fields and opcode
func SplitFields(word uint32) (Fields, OpcodeClass) {
	return Fields{
		Funct7: Field_Funct7.Extract(word),
		Rs2:    Field_Rs2.Extract(word),
		Rs1:    Field_Rs1.Extract(word),
		Funct3: Field_Funct3.Extract(word),
		Rd:     Field_Rd.Extract(word),
	}, OpcodeClass(Field_Opcode.Extract(word))
}

// Names the contents of a physical field in a given layout
type LayoutField struct {
	Name  string
	Field utils.BitField
}

// Bounds of the immediate operand of a layout
type ImmediateField struct {
	// Number of significant bits the layout can hold
	Bits int
	// Whether the immediate is interpreted as a two's complement number
	Signed bool
	// Required alignment of the value (branch and jump offsets are multiples of 2)
	Alignment int64
}

// Returns the minimum and maximum values representable by the field
func (f ImmediateField) Bounds() (int64, int64) {
	if f.Signed {
		return -(int64(1) << (f.Bits - 1)), (int64(1) << (f.Bits - 1)) - 1
	}

	return 0, (int64(1) << f.Bits) - 1
}

// Checks the value can be represented by the field without losing bits
func (f ImmediateField) Check(value int64) error {
	min, max := f.Bounds()

	if value < min || value > max {
		return utils.MakeError(ErrRange, "immediate %v does not fit in %v bits, expected a value between %v and %v", value, f.Bits, min, max)
	}

	if f.Alignment > 1 && value%f.Alignment != 0 {
		return utils.MakeError(ErrRange, "immediate %v must be a multiple of %v", value, f.Alignment)
	}

	return nil
}

// Decodes the immediate from its raw field bits
func (f ImmediateField) Decode(raw uint32) int64 {
	if f.Signed {
		return utils.SignExtend(uint64(raw), f.Bits)
	}

	return int64(raw & utils.AllOnes[uint32](f.Bits))
}

// Instruction word layout. The set of layouts is closed: RFormat, IFormat, SFormat, BFormat,
// UFormat and JFormat
type Format interface {
	// Layout name (R, I, S, B, U, J)
	Name() string

	// Kinds of the operands expected by the layout, in assembly order
	OperandKinds() []OperandKind

	// Physical fields of the layout, most significant first
	Layout() []LayoutField

	// Immediate operand bounds of an instruction using this layout, if any
	Immediate(d *Descriptor) (ImmediateField, bool)

	// Checks the descriptor provides the fixed codes the layout needs
	validate(d *Descriptor) error

	// Derives the physical fields from the translated operand values
	fields(d *Descriptor, operands []OperandValue) Fields

	// Recovers the operand values from the physical fields
	operands(d *Descriptor, fields Fields) []OperandValue
}

// Extracts bits hi:lo of a value
func slice(value uint32, hi, lo int) uint32 {
	return utils.CreateBitView(&value).Read(lo, hi-lo+1)
}

func requireFunct3(d *Descriptor, format Format) error {
	if d.Funct3 == nil {
		return utils.MakeError(ErrInternalLayout, "'%v' uses the %v layout but has no funct3 code", d.Mnemonic, format.Name())
	}

	return nil
}

func requireNoFunctCodes(d *Descriptor, format Format) error {
	if d.Funct3 != nil || d.Funct7 != nil {
		return utils.MakeError(ErrInternalLayout, "'%v' uses the %v layout, its function fields are carved out of the immediate and cannot be fixed", d.Mnemonic, format.Name())
	}

	return nil
}

// Register-register layout: funct7 | rs2 | rs1 | funct3 | rd | opcode
type RFormat struct{}

func (RFormat) Name() string { return "R" }

func (RFormat) OperandKinds() []OperandKind {
	return []OperandKind{OperandKind_Register, OperandKind_Register, OperandKind_Register}
}

func (RFormat) Layout() []LayoutField {
	return []LayoutField{
		{"funct7", Field_Funct7},
		{"rs2", Field_Rs2},
		{"rs1", Field_Rs1},
		{"funct3", Field_Funct3},
		{"rd", Field_Rd},
		{"opcode", Field_Opcode},
	}
}

func (RFormat) Immediate(d *Descriptor) (ImmediateField, bool) {
	return ImmediateField{}, false
}

func (f RFormat) validate(d *Descriptor) error {
	if err := requireFunct3(d, f); err != nil {
		return err
	}

	if d.Funct7 == nil {
		return utils.MakeError(ErrInternalLayout, "'%v' uses the R layout but has no funct7 code", d.Mnemonic)
	}

	return nil
}

func (RFormat) fields(d *Descriptor, operands []OperandValue) Fields {
	return Fields{
		Funct7: *d.Funct7,
		Rs2:    operands[2].Encode(),
		Rs1:    operands[1].Encode(),
		Funct3: *d.Funct3,
		Rd:     operands[0].Encode(),
	}
}

func (RFormat) operands(d *Descriptor, fields Fields) []OperandValue {
	return []OperandValue{
		RegisterOperandValue(int(fields.Rd)),
		RegisterOperandValue(int(fields.Rs1)),
		RegisterOperandValue(int(fields.Rs2)),
	}
}

// Immediate layout, shared by register-immediate operations, loads and jalr:
// imm[11:0] | rs1 | funct3 | rd | opcode
//
// Shift-by-immediate instructions fix funct7 and only keep the shift amount (imm[4:0])
// in the rs2 position
type IFormat struct{}

func (IFormat) Name() string { return "I" }

func (IFormat) OperandKinds() []OperandKind {
	return []OperandKind{OperandKind_Register, OperandKind_Register, OperandKind_Immediate}
}

func (IFormat) Layout() []LayoutField {
	return []LayoutField{
		{"imm[11:5]", Field_Funct7},
		{"imm[4:0]", Field_Rs2},
		{"rs1", Field_Rs1},
		{"funct3", Field_Funct3},
		{"rd", Field_Rd},
		{"opcode", Field_Opcode},
	}
}

func (IFormat) Immediate(d *Descriptor) (ImmediateField, bool) {
	if d.Funct7 != nil {
		return ImmediateField{Bits: Field_Rs2.Width, Signed: false, Alignment: 1}, true
	}

	return ImmediateField{Bits: 12, Signed: d.SignedImmediate, Alignment: 1}, true
}

func (f IFormat) validate(d *Descriptor) error {
	return requireFunct3(d, f)
}

func (IFormat) fields(d *Descriptor, operands []OperandValue) Fields {
	imm := operands[2].Encode()

	funct7 := slice(imm, 11, 5)
	if d.Funct7 != nil {
		funct7 = *d.Funct7
	}

	return Fields{
		Funct7: funct7,
		Rs2:    slice(imm, 4, 0),
		Rs1:    operands[1].Encode(),
		Funct3: *d.Funct3,
		Rd:     operands[0].Encode(),
	}
}

func (f IFormat) operands(d *Descriptor, fields Fields) []OperandValue {
	imm, _ := f.Immediate(d)
	raw := fields.Rs2

	if d.Funct7 == nil {
		raw |= fields.Funct7 << Field_Rs2.Width
	}

	return []OperandValue{
		RegisterOperandValue(int(fields.Rd)),
		RegisterOperandValue(int(fields.Rs1)),
		ImmediateValue(imm.Decode(raw)),
	}
}

// Store layout: offset[11:5] | rs2 | rs1 | funct3 | offset[4:0] | opcode
type SFormat struct{}

func (SFormat) Name() string { return "S" }

func (SFormat) OperandKinds() []OperandKind {
	return []OperandKind{OperandKind_Register, OperandKind_Register, OperandKind_Immediate}
}

func (SFormat) Layout() []LayoutField {
	return []LayoutField{
		{"offset[11:5]", Field_Funct7},
		{"rs2", Field_Rs2},
		{"rs1", Field_Rs1},
		{"funct3", Field_Funct3},
		{"offset[4:0]", Field_Rd},
		{"opcode", Field_Opcode},
	}
}

func (SFormat) Immediate(d *Descriptor) (ImmediateField, bool) {
	return ImmediateField{Bits: 12, Signed: d.SignedImmediate, Alignment: 1}, true
}

func (f SFormat) validate(d *Descriptor) error {
	return requireFunct3(d, f)
}

func (SFormat) fields(d *Descriptor, operands []OperandValue) Fields {
	offset := operands[2].Encode()

	return Fields{
		Funct7: slice(offset, 11, 5),
		Rs2:    operands[1].Encode(),
		Rs1:    operands[0].Encode(),
		Funct3: *d.Funct3,
		Rd:     slice(offset, 4, 0),
	}
}

func (f SFormat) operands(d *Descriptor, fields Fields) []OperandValue {
	imm, _ := f.Immediate(d)

	return []OperandValue{
		RegisterOperandValue(int(fields.Rs1)),
		RegisterOperandValue(int(fields.Rs2)),
		ImmediateValue(imm.Decode(fields.Funct7<<5 | fields.Rd)),
	}
}

// Branch layout: imm[12|10:5] | rs2 | rs1 | funct3 | imm[4:1|11] | opcode
//
// The offset operand is in bytes, bit 0 is implicit
type BFormat struct{}

func (BFormat) Name() string { return "B" }

func (BFormat) OperandKinds() []OperandKind {
	return []OperandKind{OperandKind_Register, OperandKind_Register, OperandKind_Immediate}
}

func (BFormat) Layout() []LayoutField {
	return []LayoutField{
		{"imm[12|10:5]", Field_Funct7},
		{"rs2", Field_Rs2},
		{"rs1", Field_Rs1},
		{"funct3", Field_Funct3},
		{"imm[4:1|11]", Field_Rd},
		{"opcode", Field_Opcode},
	}
}

func (BFormat) Immediate(d *Descriptor) (ImmediateField, bool) {
	return ImmediateField{Bits: 13, Signed: d.SignedImmediate, Alignment: 2}, true
}

func (f BFormat) validate(d *Descriptor) error {
	return requireFunct3(d, f)
}

func (BFormat) fields(d *Descriptor, operands []OperandValue) Fields {
	offset := operands[2].Encode()

	return Fields{
		Funct7: slice(offset, 12, 12)<<6 | slice(offset, 10, 5),
		Rs2:    operands[1].Encode(),
		Rs1:    operands[0].Encode(),
		Funct3: *d.Funct3,
		Rd:     slice(offset, 4, 1)<<1 | slice(offset, 11, 11),
	}
}

func (f BFormat) operands(d *Descriptor, fields Fields) []OperandValue {
	imm, _ := f.Immediate(d)
	raw := slice(fields.Funct7, 6, 6)<<12 |
		slice(fields.Rd, 0, 0)<<11 |
		slice(fields.Funct7, 5, 0)<<5 |
		slice(fields.Rd, 4, 1)<<1

	return []OperandValue{
		RegisterOperandValue(int(fields.Rs1)),
		RegisterOperandValue(int(fields.Rs2)),
		ImmediateValue(imm.Decode(raw)),
	}
}

// Upper immediate layout: imm[31:12] | rd | opcode
//
// The immediate operand is the value of the upper 20 bits. Its bit pattern takes the
// positions of the funct7, rs2, rs1 and funct3 fields
type UFormat struct{}

func (UFormat) Name() string { return "U" }

func (UFormat) OperandKinds() []OperandKind {
	return []OperandKind{OperandKind_Register, OperandKind_Immediate}
}

func (UFormat) Layout() []LayoutField {
	return []LayoutField{
		{"imm[31:12]", utils.BitField{Position: Field_Funct3.Position, Width: 20}},
		{"rd", Field_Rd},
		{"opcode", Field_Opcode},
	}
}

func (UFormat) Immediate(d *Descriptor) (ImmediateField, bool) {
	return ImmediateField{Bits: 20, Signed: d.SignedImmediate, Alignment: 1}, true
}

func (f UFormat) validate(d *Descriptor) error {
	return requireNoFunctCodes(d, f)
}

func (UFormat) fields(d *Descriptor, operands []OperandValue) Fields {
	imm := operands[1].Encode()

	return Fields{
		Funct7: slice(imm, 19, 13),
		Rs2:    slice(imm, 12, 8),
		Rs1:    slice(imm, 7, 3),
		Funct3: slice(imm, 2, 0),
		Rd:     operands[0].Encode(),
	}
}

func (f UFormat) operands(d *Descriptor, fields Fields) []OperandValue {
	imm, _ := f.Immediate(d)
	raw := fields.Funct7<<13 | fields.Rs2<<8 | fields.Rs1<<3 | fields.Funct3

	return []OperandValue{
		RegisterOperandValue(int(fields.Rd)),
		ImmediateValue(imm.Decode(raw)),
	}
}

// Jump layout: imm[20|10:1|11|19:12] | rd | opcode
//
// The offset operand is in bytes, bit 0 is implicit
type JFormat struct{}

func (JFormat) Name() string { return "J" }

func (JFormat) OperandKinds() []OperandKind {
	return []OperandKind{OperandKind_Register, OperandKind_Immediate}
}

func (JFormat) Layout() []LayoutField {
	return []LayoutField{
		{"imm[20|10:1|11]", utils.BitField{Position: Field_Rs2.Position, Width: 12}},
		{"imm[19:12]", utils.BitField{Position: Field_Funct3.Position, Width: 8}},
		{"rd", Field_Rd},
		{"opcode", Field_Opcode},
	}
}

func (JFormat) Immediate(d *Descriptor) (ImmediateField, bool) {
	return ImmediateField{Bits: 21, Signed: d.SignedImmediate, Alignment: 2}, true
}

func (f JFormat) validate(d *Descriptor) error {
	return requireNoFunctCodes(d, f)
}

func (JFormat) fields(d *Descriptor, operands []OperandValue) Fields {
	offset := operands[1].Encode()

	return Fields{
		Funct7: slice(offset, 20, 20)<<6 | slice(offset, 10, 5),
		Rs2:    slice(offset, 4, 1)<<1 | slice(offset, 11, 11),
		Rs1:    slice(offset, 19, 15),
		Funct3: slice(offset, 14, 12),
		Rd:     operands[0].Encode(),
	}
}

func (f JFormat) operands(d *Descriptor, fields Fields) []OperandValue {
	imm, _ := f.Immediate(d)
	raw := slice(fields.Funct7, 6, 6)<<20 |
		fields.Rs1<<15 |
		fields.Funct3<<12 |
		slice(fields.Rs2, 0, 0)<<11 |
		slice(fields.Funct7, 5, 0)<<5 |
		slice(fields.Rs2, 4, 1)<<1

	return []OperandValue{
		RegisterOperandValue(int(fields.Rd)),
		ImmediateValue(imm.Decode(raw)),
	}
}
