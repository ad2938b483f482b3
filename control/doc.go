// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics and debug introspection for rings.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads, validated updates and reload listeners
//   - Counters fed by ring streams
//   - Probe registration and state export for ring cursors
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
