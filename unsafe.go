//go:build go1.20

package cutf8

import (
	"unsafe"
)

// stringToReadOnlyBytes converts a string to a read-only []byte slice using unsafe.
// This avoids the allocation that would occur with []byte(s).
//
// SAFETY REQUIREMENTS:
// - The returned []byte MUST NOT be modified
// - The returned slice is valid only as long as the original string exists
// - Modifying the returned slice will cause undefined behavior
//
// The implementation uses Go 1.20+ unsafe.Slice() which is safer than previous
// unsafe string conversion techniques as it properly handles the slice header.
func stringToReadOnlyBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	// unsafe.StringData returns a pointer to the underlying string data
	// unsafe.Slice creates a slice from the pointer with the specified length
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// bytesToString converts a byte slice to a string without copying.
//
// SAFETY REQUIREMENTS:
//   - b MUST NOT be modified while the returned string is in use
//   - Callers inside this package only pass slices that are immutable views
//     or storage being transferred out of a consumed buffer
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// bytesWithNulFromPtr scans forward from p for the first nul byte and returns
// a slice covering the bytes up to and including it. Returns nil for a nil
// pointer.
//
// SAFETY REQUIREMENTS:
// - The memory at p must be valid to read up to and including the first nul
// - The returned slice aliases that memory and is valid only while it lives
func bytesWithNulFromPtr(p unsafe.Pointer) []byte {
	if p == nil {
		return nil
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return unsafe.Slice((*byte)(p), n+1)
}
