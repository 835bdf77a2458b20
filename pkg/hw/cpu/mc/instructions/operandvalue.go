package instructions

import (
	"fmt"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/registers"
)

// Represents the kind of operand (Register, immediate)
type OperandKind uint

const (
	OperandKind_Immediate OperandKind = iota
	OperandKind_Register
)

func (o OperandKind) String() string {
	switch o {
	case OperandKind_Immediate:
		return "immediate"
	case OperandKind_Register:
		return "register"
	}

	panic("unreachable")
}

// Stores the value of an instruction operand, already translated from its textual form
type OperandValue struct {
	kind  OperandKind
	value int64
}

// Returns the kind of operand this value refers to
func (v OperandValue) Kind() OperandKind {
	return v.kind
}

// Returns the register index of a register operand
func (v OperandValue) Register() int {
	if v.kind != OperandKind_Register {
		panic("operand value is not a register")
	}

	return int(v.value)
}

// Returns the value of an immediate operand
func (v OperandValue) Immediate() int64 {
	if v.kind != OperandKind_Immediate {
		panic("operand value is not an immediate")
	}

	return v.value
}

// Returns the two's complement bit pattern of the operand, truncated to 32 bits
func (v OperandValue) Encode() uint32 {
	return uint32(v.value)
}

// Returns the assembly representation of the operand value
func (v OperandValue) String() string {
	if v.kind == OperandKind_Register {
		return registers.RegisterNamePrefix + fmt.Sprint(v.value)
	}

	return fmt.Sprint(v.value)
}

// Returns a register operand value
func RegisterOperandValue(index int) OperandValue {
	return OperandValue{
		kind:  OperandKind_Register,
		value: int64(index),
	}
}

// Returns an immediate operand value
func ImmediateValue(value int64) OperandValue {
	return OperandValue{
		kind:  OperandKind_Immediate,
		value: value,
	}
}
