package arm

import (
	"github.com/wnxd/microunwind/regimage"
	"github.com/wnxd/microunwind/unwinder"
)

// sigContext is the Linux ARM sigcontext register image, the other
// place an unwind can begin. The kernel names r11 and r12 arm_fp and
// arm_ip; layout-wise they are the tail of the r0-r12 block.
type sigContext struct {
	TrapNo       uint32
	ErrorCode    uint32
	OldMask      uint32
	R            [13]uint32
	SP           uint32
	LR           uint32
	PC           uint32
	CPSR         uint32
	FaultAddress uint32
}

// FromSignalContext builds a fully populated Context from a raw
// sigcontext image. The VFP bank is not part of sigcontext and stays
// zero.
func FromSignalContext(image []byte) (unwinder.Context, error) {
	var sc sigContext
	if err := regimage.Unmarshal(image, &sc); err != nil {
		return nil, err
	}
	ctx := new(Context)
	for i, val := range sc.R {
		ctx.gp[i] = uintptr(val)
	}
	ctx.gp[13] = uintptr(sc.SP)
	ctx.gp[14] = uintptr(sc.LR)
	ctx.gp[15] = uintptr(sc.PC)
	return ctx, nil
}
