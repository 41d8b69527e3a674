//go:build arm

package arm

// Both routines are sealed assembly boundaries in context_arm.s /
// context_arm_softfp.s. They run with no local frame and a
// non-standard register contract: the context address is moved into
// r0 and every other register keeps its live value until stored or
// reloaded.

// saveContext stores the callee-saved registers (r4-r11, sp, lr and,
// on hard-float builds, s16-s31) into *ctx.
//
//go:noescape
func saveContext(ctx *Context)

// restoreContext loads every slot of *ctx into the live registers and
// branches to the pc slot. It never returns.
func restoreContext(ctx *Context)
