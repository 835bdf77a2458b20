package registers

import "fmt"

type RegisterDescriptor struct {
	// Index within the register file, also the value encoded into rd/rs1/rs2 fields
	Index int

	// Calling convention name (zero, ra, sp, ...)
	ABIName string

	// Register description (for documentation/debugging)
	Description string
}

// Returns the architectural register name (x0, x1, ...)
func (d *RegisterDescriptor) Name() string {
	return RegisterNamePrefix + fmt.Sprint(d.Index)
}

func (d *RegisterDescriptor) String() string {
	return d.Name()
}
