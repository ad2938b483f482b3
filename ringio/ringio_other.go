//go:build !linux
// +build !linux

// File: ringio/ringio_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringio

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Readv is not available on this platform.
func Readv(int, *ring.Buffer[byte]) (int, error) { return 0, api.ErrNotSupported }

// Writev is not available on this platform.
func Writev(int, *ring.Buffer[byte]) (int, error) { return 0, api.ErrNotSupported }

// Supported reports whether vectored I/O is native on this platform.
func Supported() bool { return false }
