package payload

import "runtime"

// Wipe sets every byte in x to zero.
//
//go:noinline
func Wipe(x []byte) {
	// noinline keeps the compiler from looking inside Wipe and
	// deciding that the stores to x are dead.
	for i := range x {
		x[i] = 0
	}
	runtime.KeepAlive(x)
}
