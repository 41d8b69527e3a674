package arm

import (
	"fmt"
	"strings"

	"github.com/wnxd/microunwind/dwarf/regnum"
	"github.com/wnxd/microunwind/unwinder"
)

const (
	POINTER_SIZE = 4
	GP_REG_COUNT = 16
)

type armBackend struct{}

func NewArmBackend() (unwinder.Backend, error) {
	return armBackend{}, nil
}

func (armBackend) Arch() unwinder.Arch {
	return unwinder.ARCH_ARM
}

func (armBackend) PointerSize() uint64 {
	return POINTER_SIZE
}

func (armBackend) PC() unwinder.Reg {
	return regnum.ARM_PC
}

func (armBackend) SP() unwinder.Reg {
	return regnum.ARM_SP
}

func (armBackend) LR() unwinder.Reg {
	return regnum.ARM_LR
}

func (armBackend) NewContext() unwinder.Context {
	return new(Context)
}

func (armBackend) Capture() unwinder.Context {
	return Capture()
}

func (armBackend) Restore(ctx unwinder.Context) {
	c, ok := ctx.(*Context)
	if !ok {
		panic(unwinder.ErrArchMismatch)
	}
	Restore(c)
}

// Capture records the live callee-saved register state into a fresh
// zero-initialized Context.
func Capture() unwinder.Context {
	ctx := new(Context)
	saveContext(ctx)
	return ctx
}

// Restore installs every slot of ctx into the live registers and
// branches to the pc slot. It does not return.
func Restore(ctx *Context) {
	restoreContext(ctx)
}

func (c *Context) Arch() unwinder.Arch {
	return unwinder.ARCH_ARM
}

func (c *Context) Reg(reg unwinder.Reg) uintptr {
	slot := c.lookup(reg)
	if slot == nil {
		panic(fmt.Errorf("%w: %d", unwinder.ErrRegisterInvalid, reg))
	}
	return *slot
}

func (c *Context) SetReg(reg unwinder.Reg, value uintptr) {
	slot := c.lookup(reg)
	if slot == nil {
		panic(fmt.Errorf("%w: %d", unwinder.ErrRegisterInvalid, reg))
	}
	*slot = value
}

func (c *Context) Clone() unwinder.Context {
	dup := *c
	return &dup
}

func (c *Context) Registers() []unwinder.RegisterValue {
	return c.registers()
}

func (c *Context) String() string {
	var sb strings.Builder
	sb.WriteString("Context {")
	for i, reg := range c.registers() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %#x", reg.Name, reg.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}
