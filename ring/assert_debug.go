//go:build ringdebug
// +build ringdebug

// File: ring/assert_debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract checks for the unchecked accessors and commit calls.

package ring

import "github.com/momentics/hioload-ring/api"

const debugChecks = true

func checkIndex(n, size int) {
	if n < 0 || n >= size {
		panic(api.NewError(api.ErrCodeContract, "ring: unchecked index out of range").
			WithContext("offset", n).
			WithContext("len", size))
	}
}

func checkNotEmpty(size int, op string) {
	if size == 0 {
		panic(api.NewError(api.ErrCodeContract, "ring: "+op+" on empty buffer"))
	}
}

func checkCommit(n, limit int, op string) {
	if n < 0 || n > limit {
		panic(api.NewError(api.ErrCodeContract, "ring: "+op+" exceeds available space").
			WithContext("n", n).
			WithContext("available", limit))
	}
}
