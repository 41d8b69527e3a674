//go:build !arm

package arm

import "github.com/wnxd/microunwind/unwinder"

// Context storage, indexing and the image bridge stay usable on any
// host; only the live register transfers require an arm build.

func saveContext(*Context) {
	panic(unwinder.ErrArchUnsupported)
}

func restoreContext(*Context) {
	panic(unwinder.ErrArchUnsupported)
}
