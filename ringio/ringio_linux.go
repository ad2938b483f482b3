//go:build linux
// +build linux

// File: ringio/ringio_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux vectored I/O via readv(2)/writev(2).

package ringio

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ring/ring"
)

// Readv reads from fd into the free blocks of buf and commits the bytes read.
// A would-block condition returns (0, nil); a zero-byte read with free space
// available returns io.EOF.
func Readv(fd int, buf *ring.Buffer[byte]) (int, error) {
	var scratch [2][]byte
	b1, b2 := buf.FreeBlocks()
	iov := iovecs(scratch[:0], b1, b2)
	if len(iov) == 0 {
		return 0, nil
	}
	n, err := unix.Readv(fd, iov)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
			return 0, nil
		}
		return 0, fmt.Errorf("readv: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	buf.Produce(n)
	return n, nil
}

// Writev writes the used blocks of buf to fd and consumes the bytes written.
// A would-block condition returns (0, nil).
func Writev(fd int, buf *ring.Buffer[byte]) (int, error) {
	var scratch [2][]byte
	b1, b2 := buf.UsedBlocks()
	iov := iovecs(scratch[:0], b1, b2)
	if len(iov) == 0 {
		return 0, nil
	}
	n, err := unix.Writev(fd, iov)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
			return 0, nil
		}
		return 0, fmt.Errorf("writev: %w", err)
	}
	buf.Consume(n)
	return n, nil
}

// Supported reports whether vectored I/O is native on this platform.
func Supported() bool { return true }
