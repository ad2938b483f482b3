// File: ringio/iovec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringio

// iovecs packs the non-empty blocks into dst, reusing its backing array.
func iovecs(dst [][]byte, b1, b2 []byte) [][]byte {
	dst = dst[:0]
	if len(b1) > 0 {
		dst = append(dst, b1)
	}
	if len(b2) > 0 {
		dst = append(dst, b2)
	}
	return dst
}
