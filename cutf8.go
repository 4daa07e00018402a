// Package cutf8 provides nul-terminated byte strings that are guaranteed to
// be valid UTF-8, for safe interchange with C APIs that expect C-style
// strings. CString is a validated non-owning view; CStringBuf owns its
// nul-terminated allocation. Both establish the invariant once at
// construction, so accessors never re-validate or re-copy.
package cutf8

import (
	"bytes"
	"unicode/utf8"
)

// validate scans b for its first nul byte and checks that everything before
// it is valid UTF-8. It returns the text length, excluding the terminator.
// The first nul found is by definition the terminator, so no separate
// interior-nul check is needed on this path.
func validate(b []byte) (int, error) {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return 0, ErrNotNulTerminated
	}
	if err := validUTF8(b[:i]); err != nil {
		return 0, err
	}
	return i, nil
}

// validateWithNul checks a buffer the caller asserts already ends with
// exactly one trailing nul byte. The terminator itself is an O(1)
// precondition check; the prefix is still scanned for embedded nul bytes
// rather than trusted, so a caller passing a malformed buffer gets a
// classified error instead of silent truncation at the first nul.
func validateWithNul(b []byte) (int, error) {
	if !IsNulTerminated(b) {
		return 0, ErrNotNulTerminated
	}
	text := b[:len(b)-1]
	if i := bytes.IndexByte(text, 0); i >= 0 {
		return 0, &InteriorNulError{Offset: i}
	}
	if err := validUTF8(text); err != nil {
		return 0, err
	}
	return len(text), nil
}

// validUTF8 reports the first invalid byte in p, if any. utf8.Valid is the
// fast path; the rune walk runs only on failure to locate the offset.
func validUTF8(p []byte) error {
	if utf8.Valid(p) {
		return nil
	}
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return &InvalidUTF8Error{Offset: i}
		}
		i += size
	}
	return nil
}

// IsNulTerminated reports whether b ends with a nul byte.
func IsNulTerminated(b []byte) bool {
	return len(b) > 0 && b[len(b)-1] == 0
}
