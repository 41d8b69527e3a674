package regnum

import (
	"fmt"

	"golang.org/x/arch/arm/armasm"
)

// The mapping between hardware registers and DWARF registers is
// specified in the DWARF for the ARM® Architecture ABI supplement,
// Table 1.
// http://infocenter.arm.com/help/topic/com.arm.doc.ihi0040b/IHI0040B_aadwarf.pdf

const (
	ARM_R0 = 0 // R0 through R15 follow
	ARM_BP = 11
	ARM_SP = 13
	ARM_LR = 14
	ARM_PC = 15
	ARM_S0 = 256 // S1 through S31 follow

	_ARM_MaxRegNum = ARM_S0 + 31
)

func ARMToName(num uint64) string {
	switch {
	case num == ARM_SP:
		return "SP"
	case num == ARM_LR:
		return "LR"
	case num == ARM_PC:
		return "PC"
	case num <= 15:
		return fmt.Sprintf("R%d", num)
	case num >= ARM_S0 && num <= _ARM_MaxRegNum:
		return fmt.Sprintf("S%d", num-ARM_S0)
	default:
		return fmt.Sprintf("unknown%d", num)
	}
}

func ARMMaxRegNum() uint64 {
	return _ARM_MaxRegNum
}

var dwarfToAsm = func() map[uint64]armasm.Reg {
	r := make(map[uint64]armasm.Reg)
	for i := uint64(0); i <= 15; i++ {
		r[i] = armasm.R0 + armasm.Reg(i)
	}
	for i := uint64(0); i <= 31; i++ {
		r[ARM_S0+i] = armasm.S0 + armasm.Reg(i)
	}
	return r
}()

func ARMToAsm(num uint64) (armasm.Reg, bool) {
	reg, ok := dwarfToAsm[num]
	return reg, ok
}

var ARMNameToDwarf = func() map[string]int {
	r := make(map[string]int)
	for i := 0; i <= 15; i++ {
		r[fmt.Sprintf("r%d", i)] = ARM_R0 + i
	}
	r["fp"] = 11
	r["sp"] = 13
	r["lr"] = 14
	r["pc"] = 15

	for i := 0; i <= 31; i++ {
		r[fmt.Sprintf("s%d", i)] = ARM_S0 + i
	}

	return r
}()
