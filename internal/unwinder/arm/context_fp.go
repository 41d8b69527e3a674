//go:build !softfp

package arm

import (
	"github.com/wnxd/microunwind/dwarf/regnum"
	"github.com/wnxd/microunwind/unwinder"
)

const FP_REG_COUNT = 32

// Context is the hard-float layout variant: the 16 general-purpose
// slots followed by the 32 VFP single-precision slots. The field order
// and offsets are shared bit-for-bit with context_arm.s.
type Context struct {
	gp [GP_REG_COUNT]uintptr
	fp [FP_REG_COUNT]uintptr
}

func (c *Context) lookup(reg unwinder.Reg) *uintptr {
	switch {
	case reg <= regnum.ARM_PC:
		return &c.gp[reg]
	case reg >= regnum.ARM_S0 && reg <= regnum.ARM_S0+FP_REG_COUNT-1:
		return &c.fp[reg-regnum.ARM_S0]
	}
	return nil
}

func (c *Context) registers() []unwinder.RegisterValue {
	regs := make([]unwinder.RegisterValue, 0, GP_REG_COUNT+FP_REG_COUNT)
	for i := range c.gp {
		regs = append(regs, unwinder.RegisterValue{Name: regnum.ARMToName(uint64(i)), Value: c.gp[i]})
	}
	for i := range c.fp {
		regs = append(regs, unwinder.RegisterValue{Name: regnum.ARMToName(regnum.ARM_S0 + uint64(i)), Value: c.fp[i]})
	}
	return regs
}
