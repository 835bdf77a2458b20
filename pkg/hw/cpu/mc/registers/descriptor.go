package registers

var abiRegisters = []struct {
	name        string
	description string
}{
	{"zero", "hard-wired zero"},
	{"ra", "return address"},
	{"sp", "stack pointer"},
	{"gp", "global pointer"},
	{"tp", "thread pointer"},
	{"t0", "temporary / alternate link register"},
	{"t1", "temporary"},
	{"t2", "temporary"},
	{"s0", "saved register / frame pointer"},
	{"s1", "saved register"},
	{"a0", "function argument / return value"},
	{"a1", "function argument / return value"},
	{"a2", "function argument"},
	{"a3", "function argument"},
	{"a4", "function argument"},
	{"a5", "function argument"},
	{"a6", "function argument"},
	{"a7", "function argument"},
	{"s2", "saved register"},
	{"s3", "saved register"},
	{"s4", "saved register"},
	{"s5", "saved register"},
	{"s6", "saved register"},
	{"s7", "saved register"},
	{"s8", "saved register"},
	{"s9", "saved register"},
	{"s10", "saved register"},
	{"s11", "saved register"},
	{"t3", "temporary"},
	{"t4", "temporary"},
	{"t5", "temporary"},
	{"t6", "temporary"},
}

// Integer register file of RV32I
var IntegerRegisters *RegisterFile = NewRegisterFile(32)
