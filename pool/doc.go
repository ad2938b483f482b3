// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reuse of ring-backed staging areas across connections. A ring is allocated
// once at its full capacity, so pooling avoids re-allocating the storage for
// every short-lived connection.
package pool
