// Package filesystem provides filesystem implementations for wtlaunch.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed one used by tests.
package filesystem
