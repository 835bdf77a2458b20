package instructions

import (
	"errors"
)

var (
	// The mnemonic is not in the mnemonic table (after pseudo-instruction expansion)
	ErrUnknownMnemonic = errors.New("unknown instruction")
	// Wrong number of operands for the instruction
	ErrArity = errors.New("wrong number of operands")
	// An operand does not follow the expected syntax
	ErrFormat = errors.New("invalid operand")
	// An immediate does not fit the bounds allowed by the register width or the instruction layout
	ErrRange = errors.New("operand out of range")
	// The mnemonic table and the encoder disagree about an instruction layout
	ErrInternalLayout = errors.New("internal instruction layout error")
	// A machine word does not match any instruction of the table
	ErrUnknownEncoding = errors.New("unknown instruction encoding")
)

// Classifies instruction encoding errors
type ErrorKind uint

const (
	ErrorKind_None ErrorKind = iota
	ErrorKind_UnknownMnemonic
	ErrorKind_Arity
	ErrorKind_Format
	ErrorKind_Range
	ErrorKind_InternalLayout
	ErrorKind_UnknownEncoding
	ErrorKind_Other
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKind_None:
		return "None"
	case ErrorKind_UnknownMnemonic:
		return "UnknownMnemonicError"
	case ErrorKind_Arity:
		return "ArityError"
	case ErrorKind_Format:
		return "FormatError"
	case ErrorKind_Range:
		return "RangeError"
	case ErrorKind_InternalLayout:
		return "InternalLayoutError"
	case ErrorKind_UnknownEncoding:
		return "UnknownEncodingError"
	case ErrorKind_Other:
		return "Error"
	}

	panic("unreachable")
}

// Returns the kind of an error returned by this package
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKind_None
	case errors.Is(err, ErrInternalLayout):
		return ErrorKind_InternalLayout
	case errors.Is(err, ErrUnknownMnemonic):
		return ErrorKind_UnknownMnemonic
	case errors.Is(err, ErrArity):
		return ErrorKind_Arity
	case errors.Is(err, ErrFormat):
		return ErrorKind_Format
	case errors.Is(err, ErrRange):
		return ErrorKind_Range
	case errors.Is(err, ErrUnknownEncoding):
		return ErrorKind_UnknownEncoding
	}

	return ErrorKind_Other
}
