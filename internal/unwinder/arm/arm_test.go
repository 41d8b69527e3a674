package arm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wnxd/microunwind/dwarf/regnum"
	"github.com/wnxd/microunwind/unwinder"
)

func TestIndexTotality(t *testing.T) {
	ctx := new(Context)
	valid := 0
	for reg := unwinder.Reg(0); reg <= 15; reg++ {
		ctx.SetReg(reg, uintptr(0x100+reg))
		assert.Equal(t, uintptr(0x100+reg), ctx.Reg(reg))
		valid++
	}
	if FP_REG_COUNT > 0 {
		for reg := unwinder.Reg(256); reg <= 287; reg++ {
			ctx.SetReg(reg, uintptr(0x200+reg))
			assert.Equal(t, uintptr(0x200+reg), ctx.Reg(reg))
			valid++
		}
	}
	assert.Equal(t, GP_REG_COUNT+FP_REG_COUNT, valid)
	// the two banks never alias
	assert.Equal(t, uintptr(0x100), ctx.Reg(0))
}

func TestIndexInvalid(t *testing.T) {
	invalid := []unwinder.Reg{16, 100, 200, 255, 288, 1000}
	if FP_REG_COUNT == 0 {
		invalid = append(invalid, 256, 287)
	}
	ctx := new(Context)
	for _, reg := range invalid {
		t.Run(fmt.Sprintf("reg%d", reg), func(t *testing.T) {
			assert.PanicsWithError(t, fmt.Sprintf("register identifier invalid: %d", reg), func() {
				ctx.Reg(reg)
			})
			assert.Panics(t, func() {
				ctx.SetReg(reg, 1)
			})
		})
	}
}

func TestSetSPAndLR(t *testing.T) {
	ctx := new(Context)
	ctx.SetReg(regnum.ARM_SP, 0x1000)
	ctx.SetReg(regnum.ARM_LR, 0x2000)
	assert.Equal(t, uintptr(0x1000), ctx.Reg(regnum.ARM_SP))
	assert.Equal(t, uintptr(0x2000), ctx.Reg(regnum.ARM_LR))
	// every other slot stays zero
	for reg := unwinder.Reg(0); reg <= 15; reg++ {
		if reg == regnum.ARM_SP || reg == regnum.ARM_LR {
			continue
		}
		assert.Zero(t, ctx.Reg(reg))
	}
}

func TestCloneIndependence(t *testing.T) {
	ctx := new(Context)
	ctx.SetReg(4, 0xAAAAAAAA)
	dup := ctx.Clone()
	dup.SetReg(4, 0xBBBBBBBB)
	dup.SetReg(regnum.ARM_PC, 0x8000)
	assert.Equal(t, uintptr(0xAAAAAAAA), ctx.Reg(4))
	assert.Zero(t, ctx.Reg(regnum.ARM_PC))
	assert.Equal(t, uintptr(0xBBBBBBBB), dup.Reg(4))
}

func TestRegisters(t *testing.T) {
	ctx := new(Context)
	ctx.SetReg(regnum.ARM_SP, 0x1000)
	regs := ctx.Registers()
	require.Len(t, regs, GP_REG_COUNT+FP_REG_COUNT)
	assert.Equal(t, "R0", regs[0].Name)
	assert.Equal(t, "R12", regs[12].Name)
	assert.Equal(t, "SP", regs[13].Name)
	assert.Equal(t, uintptr(0x1000), regs[13].Value)
	assert.Equal(t, "LR", regs[14].Name)
	assert.Equal(t, "PC", regs[15].Name)
	if FP_REG_COUNT > 0 {
		assert.Equal(t, "S0", regs[16].Name)
		assert.Equal(t, "S31", regs[47].Name)
	}
	assert.Contains(t, ctx.String(), "SP: 0x1000")
}

func TestBackend(t *testing.T) {
	backend, err := NewArmBackend()
	require.NoError(t, err)
	assert.Equal(t, unwinder.ARCH_ARM, backend.Arch())
	assert.Equal(t, uint64(4), backend.PointerSize())
	assert.Equal(t, unwinder.Reg(regnum.ARM_PC), backend.PC())
	assert.Equal(t, unwinder.Reg(regnum.ARM_SP), backend.SP())
	assert.Equal(t, unwinder.Reg(regnum.ARM_LR), backend.LR())

	ctx := backend.NewContext()
	assert.Equal(t, unwinder.ARCH_ARM, ctx.Arch())
	for reg := unwinder.Reg(0); reg <= 15; reg++ {
		assert.Zero(t, ctx.Reg(reg))
	}
}

type fakeContext struct {
	unwinder.Context
}

func TestRestoreForeignContext(t *testing.T) {
	backend, err := NewArmBackend()
	require.NoError(t, err)
	assert.PanicsWithValue(t, unwinder.ErrArchMismatch, func() {
		backend.Restore(fakeContext{})
	})
}
