//go:build !ringdebug
// +build !ringdebug

// File: ring/assert_release.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

const debugChecks = false

func checkIndex(int, int) {}

func checkNotEmpty(int, string) {}

func checkCommit(int, int, string) {}
