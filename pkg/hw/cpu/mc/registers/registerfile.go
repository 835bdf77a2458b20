package registers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Manu343726/rvasm/pkg/utils"
)

// Prefix of the architectural register names
const RegisterNamePrefix = "x"

var ErrInvalidRegister = errors.New("invalid register")

// Describes the integer register file of the target. The number of addressable
// registers follows the configured register width (xlen)
type RegisterFile struct {
	registers []*RegisterDescriptor
}

// Returns the number of registers in the file
func (f *RegisterFile) TotalRegisters() int {
	return len(f.registers)
}

// Returns the set of all registers in the file
func (f *RegisterFile) AllRegisters() []*RegisterDescriptor {
	return f.registers
}

// Returns a register given its index
func (f *RegisterFile) Register(index int) (*RegisterDescriptor, error) {
	if index < 0 || index >= len(f.registers) {
		return nil, utils.MakeError(ErrInvalidRegister, "index out of bounds for '%v%v', valid indices are 0 to %v", RegisterNamePrefix, index, len(f.registers)-1)
	}

	return f.registers[index], nil
}

// Parses a register name of the form 'x<index>' and returns the register index
func (f *RegisterFile) Parse(name string) (int, error) {
	digits, hasPrefix := strings.CutPrefix(name, RegisterNamePrefix)

	if !hasPrefix || len(digits) == 0 {
		return 0, utils.MakeError(ErrInvalidRegister, "expected register instead of '%v'", name)
	}

	if strings.ContainsFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) {
		return 0, utils.MakeError(ErrInvalidRegister, "not a valid register index '%v'", name)
	}

	index, err := strconv.Atoi(digits)
	if err != nil {
		return 0, utils.MakeError(ErrInvalidRegister, "not a valid register index '%v'", name)
	}

	if _, err := f.Register(index); err != nil {
		return 0, err
	}

	return index, nil
}

// Returns a register file with the given number of registers. ABI names are
// assigned to the first registers following the RISC-V calling convention
func NewRegisterFile(count int) *RegisterFile {
	return &RegisterFile{
		registers: utils.Iota(count, func(i int) *RegisterDescriptor {
			register := &RegisterDescriptor{Index: i}

			if i < len(abiRegisters) {
				register.ABIName = abiRegisters[i].name
				register.Description = abiRegisters[i].description
			}

			return register
		}),
	}
}
