package cutf8

import (
	"encoding"
	"encoding/json"
	"errors"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec interop: both types encode as their text content, and decoding
// funnels through New so the nul-termination and UTF-8 invariants are
// re-established at the wire boundary. Only CStringBuf decodes — a borrowed
// view cannot own bytes produced by a decoder.

// MarshalJSON encodes the text content as a JSON string.
func (c CString) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// MarshalJSON encodes the text content as a JSON string.
func (b *CStringBuf) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes a JSON string and validates it. A string containing
// an escaped nul (\u0000) fails with *InteriorNulError.
func (b *CStringBuf) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	nb, err := New(s)
	if err != nil {
		return err
	}
	b.data = nb.data
	return nil
}

// MarshalText returns a copy of the text content, without the trailing nul.
func (c CString) MarshalText() ([]byte, error) {
	return cloneBytes(c.Bytes()), nil
}

// MarshalText returns a copy of the text content, without the trailing nul.
func (b *CStringBuf) MarshalText() ([]byte, error) {
	return cloneBytes(b.Bytes()), nil
}

// UnmarshalText validates text and copies it into a fresh nul-terminated
// buffer. Unlike JSON input, raw text bytes carry no encoding guarantee, so
// both the interior-nul and UTF-8 checks run here.
func (b *CStringBuf) UnmarshalText(text []byte) error {
	nb, err := FromBytesWithNul(append(cloneBytes(text), 0))
	if err != nil {
		var rej *RejectedBufferError
		if errors.As(err, &rej) {
			return rej.Err
		}
		return err
	}
	b.data = nb.data
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder, writing the text content
// as a msgpack string.
func (c CString) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(c.String())
}

// EncodeMsgpack implements msgpack.CustomEncoder, writing the text content
// as a msgpack string.
func (b *CStringBuf) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(b.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder, reading a msgpack string
// and validating it.
func (b *CStringBuf) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	nb, err := New(s)
	if err != nil {
		return err
	}
	b.data = nb.data
	return nil
}

var (
	_ json.Marshaler           = CString{}
	_ json.Marshaler           = (*CStringBuf)(nil)
	_ json.Unmarshaler         = (*CStringBuf)(nil)
	_ encoding.TextMarshaler   = CString{}
	_ encoding.TextMarshaler   = (*CStringBuf)(nil)
	_ encoding.TextUnmarshaler = (*CStringBuf)(nil)
	_ msgpack.CustomEncoder    = CString{}
	_ msgpack.CustomEncoder    = (*CStringBuf)(nil)
	_ msgpack.CustomDecoder    = (*CStringBuf)(nil)
)
