package unwinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopBackend struct {
	Backend
}

func TestRegister(t *testing.T) {
	const arch = Arch(-1)
	ctor := func() (Backend, error) {
		return nopBackend{}, nil
	}
	assert.True(t, Register(arch, ctor))
	assert.False(t, Register(arch, ctor))

	backend, err := New(arch)
	require.NoError(t, err)
	assert.IsType(t, nopBackend{}, backend)
}

func TestNewUnknownArch(t *testing.T) {
	_, err := New(ARCH_UNKNOWN)
	assert.ErrorIs(t, err, ErrArchUnsupported)
}

func TestAlign(t *testing.T) {
	assert.Equal(t, 0, Align(0, 8))
	assert.Equal(t, 8, Align(1, 8))
	assert.Equal(t, 8, Align(8, 8))
	assert.Equal(t, uint64(16), Align(uint64(9), uint64(8)))
}
