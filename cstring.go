package cutf8

import (
	"bytes"
	"unsafe"
)

// CStr is the read surface shared by CString and CStringBuf. Code that only
// needs to hand a validated string to a C API can accept either form.
type CStr interface {
	// String returns the text content, excluding the trailing nul.
	String() string
	// StringWithNul returns the text content including the trailing nul.
	StringWithNul() string
	// Bytes returns the bytes of the text, excluding the trailing nul.
	Bytes() []byte
	// BytesWithNul returns the bytes including the trailing nul.
	BytesWithNul() []byte
	// Ptr returns the address of the first byte, valid for reads up to and
	// including the trailing nul for as long as the value is alive.
	Ptr() unsafe.Pointer
	// Len returns the byte length of the text, excluding the trailing nul.
	Len() int
}

// CString is a validated, non-owning view of a nul-terminated UTF-8 byte
// sequence. The view borrows the caller's storage and must not outlive it.
// The zero value is an empty, nil view; construct real values with FromBytes,
// FromString, or FromPtr.
type CString struct {
	data []byte // includes the trailing nul
}

// FromBytes locates the first nul byte in b, validates that the bytes before
// it are UTF-8, and returns a view over b up to and including that
// terminator. Bytes past the first nul are outside the C string and are
// ignored. Fails with ErrNotNulTerminated if b contains no nul byte, or
// *InvalidUTF8Error if the prefix is not valid UTF-8.
func FromBytes(b []byte) (CString, error) {
	n, err := validate(b)
	if err != nil {
		return CString{}, err
	}
	return CString{data: b[:n+1]}, nil
}

// FromBytesUnchecked wraps b without any validation. The caller asserts that
// b ends with exactly one nul byte and that everything before it is valid
// UTF-8; passing anything else violates the type's contract and poisons every
// guarantee downstream. Use only when the invariant is independently proven,
// e.g. bytes taken from another CString or CStringBuf.
func FromBytesUnchecked(b []byte) CString {
	return CString{data: b}
}

// FromString returns a view over a string that already carries its nul
// terminator, e.g. cutf8.FromString("en_US.UTF-8\x00"). Go string literals
// are valid UTF-8 by construction, so for literal input only the terminator
// and interior-nul placement can fail. The conversion is zero-copy.
func FromString(s string) (CString, error) {
	return FromBytes(stringToReadOnlyBytes(s))
}

// FromStringUnchecked is FromString without validation; the same contract as
// FromBytesUnchecked applies.
func FromStringUnchecked(s string) CString {
	return CString{data: stringToReadOnlyBytes(s)}
}

// FromPtr interprets p as the address of a C string: it scans forward for
// the first nul byte, then validates the preceding bytes as UTF-8.
//
// SAFETY REQUIREMENTS:
// - The memory at p must be valid to read up to and including the first nul
// - The returned view is valid only while that memory remains alive
// - Violating either is undefined behavior, not a recoverable error
func FromPtr(p unsafe.Pointer) (CString, error) {
	b := bytesWithNulFromPtr(p)
	if _, err := validateWithNul(b); err != nil {
		return CString{}, err
	}
	return CString{data: b}, nil
}

func (c CString) text() []byte {
	if len(c.data) == 0 {
		return nil
	}
	return c.data[:len(c.data)-1]
}

// String returns the text content, excluding the trailing nul. The
// conversion is zero-copy; the result aliases the view's storage.
func (c CString) String() string {
	return bytesToString(c.text())
}

// StringWithNul returns the text content including the trailing nul.
func (c CString) StringWithNul() string {
	return bytesToString(c.data)
}

// Bytes returns the bytes of the text, excluding the trailing nul. The slice
// borrows the view's storage and must not be modified.
func (c CString) Bytes() []byte {
	return c.text()
}

// BytesWithNul returns the bytes including the trailing nul, suitable for
// handing to APIs that take a full nul-terminated buffer. The slice borrows
// the view's storage and must not be modified.
func (c CString) BytesWithNul() []byte {
	return c.data
}

// Ptr returns the address of the first byte. The address is valid for reads
// up to and including the trailing nul, for as long as the underlying
// storage is alive. Returns nil for the zero view.
func (c CString) Ptr() unsafe.Pointer {
	if len(c.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(c.data))
}

// Len returns the byte length of the text, excluding the trailing nul.
func (c CString) Len() int {
	return len(c.text())
}

// IsEmpty reports whether the text content is empty.
func (c CString) IsEmpty() bool {
	return c.Len() == 0
}

// Equal reports whether two views hold identical bytes.
func (c CString) Equal(other CString) bool {
	return bytes.Equal(c.data, other.data)
}

// Clone copies the view into a new owned CStringBuf. This is the only way to
// upgrade a borrowed view to an owned buffer.
func (c CString) Clone() *CStringBuf {
	if len(c.data) == 0 {
		return Empty()
	}
	return &CStringBuf{data: cloneBytes(c.data)}
}

var _ CStr = CString{}
