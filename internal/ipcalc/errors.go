package ipcalc

import "errors"

var (
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidMask       = errors.New("invalid netmask")
	ErrInvalidPrefix     = errors.New("invalid prefix length")
	ErrInvalidNetwork    = errors.New("invalid network")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInsufficientSpace = errors.New("insufficient address space")
)
