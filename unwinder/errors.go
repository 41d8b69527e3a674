package unwinder

import "errors"

var (
	ErrArchUnsupported = errors.New("architecture unsupported")
	ErrArchMismatch    = errors.New("architecture mismatch")
	ErrRegisterInvalid = errors.New("register identifier invalid")
	ErrImageSize       = errors.New("register image size mismatch")
)
