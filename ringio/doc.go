// Package ringio
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vectored socket and file I/O against a byte ring. Readv fills both free
// blocks with one readv(2); Writev drains both used blocks with one writev(2).
// Only linux has a native implementation; elsewhere the calls return
// api.ErrNotSupported.
package ringio
