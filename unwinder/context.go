package unwinder

import "fmt"

// Reg is a DWARF register identifier, numbered by the target
// architecture's ABI supplement. The numbering is a fixed external
// contract shared with the CFI producer.
type Reg uint64

type RegisterValue struct {
	Name  string
	Value uintptr
}

// Context holds one frame's reconstructed register file. A Context
// belongs to a single unwinding pass on a single goroutine; it is
// never shared.
type Context interface {
	fmt.Stringer
	Arch() Arch
	// Reg and SetReg panic with ErrRegisterInvalid when reg is outside
	// the backend's identifier ranges. A bad identifier can only come
	// from a malformed CFI rule; fabricating a slot for it would
	// corrupt every later frame.
	Reg(reg Reg) uintptr
	SetReg(reg Reg, value uintptr)
	Clone() Context
	Registers() []RegisterValue
}

type Backend interface {
	Arch() Arch
	PointerSize() uint64
	PC() Reg
	SP() Reg
	LR() Reg
	NewContext() Context
	// Capture records the live callee-saved register state. It always
	// succeeds; registers outside the preserved set stay zero.
	Capture() Context
	// Restore installs ctx into the live registers and branches to the
	// pc slot. It never returns.
	Restore(ctx Context)
}
