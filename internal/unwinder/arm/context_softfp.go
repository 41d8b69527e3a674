//go:build softfp

package arm

import (
	"github.com/wnxd/microunwind/dwarf/regnum"
	"github.com/wnxd/microunwind/unwinder"
)

const FP_REG_COUNT = 0

// Context is the soft-float layout variant: no VFP bank exists, and
// the identifier block [256,287] is invalid. The general-purpose
// layout is identical to the hard-float variant.
type Context struct {
	gp [GP_REG_COUNT]uintptr
}

func (c *Context) lookup(reg unwinder.Reg) *uintptr {
	if reg <= regnum.ARM_PC {
		return &c.gp[reg]
	}
	return nil
}

func (c *Context) registers() []unwinder.RegisterValue {
	regs := make([]unwinder.RegisterValue, 0, GP_REG_COUNT)
	for i := range c.gp {
		regs = append(regs, unwinder.RegisterValue{Name: regnum.ARMToName(uint64(i)), Value: c.gp[i]})
	}
	return regs
}
