package cutf8

import (
	"bytes"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// CStringBuf is an owned, heap-allocated nul-terminated UTF-8 string. The
// buffer is the sole owner of its storage; nothing else may mutate it. It is
// the owning counterpart of CString and can always produce one over its own
// storage at zero cost.
type CStringBuf struct {
	data []byte // includes the trailing nul
}

// New copies s into a fresh nul-terminated buffer. Go strings carry no
// embedded-nul restriction at the type level, so s is still scanned; a nul
// byte anywhere in s fails with *InteriorNulError carrying its offset. A
// valid UTF-8 s without nul bytes always succeeds.
func New(s string) (*CStringBuf, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, &InteriorNulError{Offset: i}
	}
	data := make([]byte, len(s)+1)
	copy(data, s)
	return &CStringBuf{data: data}, nil
}

// Empty returns a buffer holding the empty string: a single nul byte.
func Empty() *CStringBuf {
	return &CStringBuf{data: []byte{0}}
}

// FromBytesWithNul adopts b as the buffer's storage without copying. The
// caller asserts b ends with exactly one trailing nul; the prefix is still
// validated (embedded nul bytes and UTF-8). On success the buffer takes
// ownership of b, which the caller must no longer use. On failure ownership
// stays with the caller: the returned *RejectedBufferError carries b
// unchanged, so nothing is lost.
func FromBytesWithNul(b []byte) (*CStringBuf, error) {
	if _, err := validateWithNul(b); err != nil {
		return nil, &RejectedBufferError{Bytes: b, Err: err}
	}
	return &CStringBuf{data: b}, nil
}

// NewFromBytes runs the same scan as FromBytes, then copies the validated
// bytes into an owned buffer.
func NewFromBytes(b []byte) (*CStringBuf, error) {
	n, err := validate(b)
	if err != nil {
		return nil, err
	}
	return &CStringBuf{data: cloneBytes(b[:n+1])}, nil
}

// NewFromPtr scans the C string at p as FromPtr does, then copies it into an
// owned buffer. The same safety requirements as FromPtr apply; the copy does
// not retain p.
func NewFromPtr(p unsafe.Pointer) (*CStringBuf, error) {
	c, err := FromPtr(p)
	if err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// AsCString returns a view borrowing this buffer's storage. No validation
// and no allocation occur; the invariant was established at construction and
// the view is valid while the buffer is alive and unmutated.
func (b *CStringBuf) AsCString() CString {
	return CString{data: b.data}
}

// String returns the text content, excluding the trailing nul.
func (b *CStringBuf) String() string {
	return b.AsCString().String()
}

// StringWithNul returns the text content including the trailing nul.
func (b *CStringBuf) StringWithNul() string {
	return b.AsCString().StringWithNul()
}

// Bytes returns the bytes of the text, excluding the trailing nul. The slice
// aliases the buffer's storage and must not be modified.
func (b *CStringBuf) Bytes() []byte {
	return b.AsCString().Bytes()
}

// BytesWithNul returns the bytes including the trailing nul. The slice
// aliases the buffer's storage and must not be modified.
func (b *CStringBuf) BytesWithNul() []byte {
	return b.data
}

// Ptr returns the address of the first byte, valid for reads through the
// trailing nul while the buffer is alive and unmutated.
func (b *CStringBuf) Ptr() unsafe.Pointer {
	return b.AsCString().Ptr()
}

// Len returns the byte length of the text, excluding the trailing nul.
func (b *CStringBuf) Len() int {
	return b.AsCString().Len()
}

// IsEmpty reports whether the text content is empty.
func (b *CStringBuf) IsEmpty() bool {
	return b.Len() == 0
}

// Equal reports whether two buffers hold identical bytes.
func (b *CStringBuf) Equal(other *CStringBuf) bool {
	return bytes.Equal(b.data, other.data)
}

// Clone returns an independent copy of the buffer.
func (b *CStringBuf) Clone() *CStringBuf {
	return b.AsCString().Clone()
}

// AppendString appends s to the text, keeping the trailing nul in place.
// Fails with *InteriorNulError if s contains a nul byte; the buffer is
// unchanged on failure. Any previously taken view or pointer is invalidated
// by a successful append.
func (b *CStringBuf) AppendString(s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return &InteriorNulError{Offset: i}
	}
	if len(b.data) == 0 {
		b.data = []byte{0}
	}
	b.data = append(b.data[:len(b.data)-1], s...)
	b.data = append(b.data, 0)
	return nil
}

// AppendRune appends the UTF-8 encoding of r, keeping the trailing nul in
// place. The nul rune is rejected with *InteriorNulError at the current text
// length.
func (b *CStringBuf) AppendRune(r rune) error {
	if r == 0 {
		return &InteriorNulError{Offset: b.Len()}
	}
	if len(b.data) == 0 {
		b.data = []byte{0}
	}
	b.data = utf8.AppendRune(b.data[:len(b.data)-1], r)
	b.data = append(b.data, 0)
	return nil
}

// IntoString consumes the buffer and returns its text without the trailing
// nul. The buffer releases its storage and reads as empty afterward.
func (b *CStringBuf) IntoString() string {
	s := bytesToString(b.AsCString().text())
	b.data = nil
	return s
}

// IntoBytes consumes the buffer and returns its storage sliced to the text
// length, without the trailing nul. The buffer releases the storage and
// reads as empty afterward.
func (b *CStringBuf) IntoBytes() []byte {
	d := b.AsCString().text()
	b.data = nil
	return d
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

var _ CStr = (*CStringBuf)(nil)
