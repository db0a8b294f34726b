package hw

import "unsafe"

// Avoid branches. In the SSA compiler, this compiles to
// exactly what you would want it to.

func b2u8(x bool) uint8   { return *(*uint8)(unsafe.Pointer(&x)) }
func b2u16(x bool) uint16 { return uint16(b2u8(x)) }
