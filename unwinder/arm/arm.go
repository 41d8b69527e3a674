package arm

import (
	internal "github.com/wnxd/microunwind/internal/unwinder/arm"
	"github.com/wnxd/microunwind/unwinder"
)

var _ = unwinder.Register(unwinder.ARCH_ARM, internal.NewArmBackend)

// Capture records the live callee-saved register state. Requires an
// arm build.
func Capture() unwinder.Context {
	return internal.Capture()
}

// Restore installs ctx into the live registers and branches to its pc
// slot. It never returns. Requires an arm build.
func Restore(ctx unwinder.Context) {
	c, ok := ctx.(*internal.Context)
	if !ok {
		panic(unwinder.ErrArchMismatch)
	}
	internal.Restore(c)
}

// FromSignalContext builds a Context from a Linux ARM sigcontext
// register image.
func FromSignalContext(image []byte) (unwinder.Context, error) {
	return internal.FromSignalContext(image)
}
