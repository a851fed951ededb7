// Package wire implements a bit-exact, length-prefixed serialization:
// every artifact is a scheme byte, optionally a key-kind byte, then each
// algebraic field as u32-length || bytes, with a zero length marking an
// absent field (used by partially-populated keys).
package wire

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/drand/kyber"
)

// KeyKind is the second byte of a serialized key, distinguishing which of
// the five key containers the payload holds.
type KeyKind byte

const (
	KeyKindGroup KeyKind = iota
	KeyKindIssuer
	KeyKindOpener
	KeyKindMember
	KeyKindBlinding
)

// Encoder accumulates a scheme artifact's wire representation.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns an Encoder starting with the given scheme code.
func NewEncoder(schemeCode byte) *Encoder {
	e := &Encoder{}
	e.buf.WriteByte(schemeCode)
	return e
}

// WriteKeyKind appends the key-kind byte; only key artifacts carry one.
func (e *Encoder) WriteKeyKind(k KeyKind) { e.buf.WriteByte(byte(k)) }

// WriteField appends a length-prefixed field. A nil or empty slice encodes a
// zero-length marker meaning the field is absent.
func (e *Encoder) WriteField(b []byte) {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(b)))
	e.buf.Write(length[:])
	e.buf.Write(b)
}

// WritePoint marshals and appends a kyber.Point, or an absent marker if p is
// nil.
func (e *Encoder) WritePoint(p kyber.Point) error {
	if p == nil {
		e.WriteField(nil)
		return nil
	}
	b, err := p.MarshalBinary()
	if err != nil {
		return fmt.Errorf("wire: marshal point: %w", err)
	}
	e.WriteField(b)
	return nil
}

// WriteScalar marshals and appends a kyber.Scalar, or an absent marker if s
// is nil.
func (e *Encoder) WriteScalar(s kyber.Scalar) error {
	if s == nil {
		e.WriteField(nil)
		return nil
	}
	b, err := s.MarshalBinary()
	if err != nil {
		return fmt.Errorf("wire: marshal scalar: %w", err)
	}
	e.WriteField(b)
	return nil
}

// Bytes returns the accumulated byte encoding.
func (e *Encoder) Bytes() []byte { return e.buf.Bytes() }

// Text returns the base64 text encoding of the accumulated bytes, optionally
// wrapped every wrapAt characters (0 disables wrapping).
func (e *Encoder) Text(wrapAt int) string {
	return EncodeText(e.Bytes(), wrapAt)
}

// EncodeText base64-encodes b, optionally line-wrapping every wrapAt chars.
func EncodeText(b []byte, wrapAt int) string {
	s := base64.StdEncoding.EncodeToString(b)
	if wrapAt <= 0 {
		return s
	}
	var out strings.Builder
	for i := 0; i < len(s); i += wrapAt {
		end := i + wrapAt
		if end > len(s) {
			end = len(s)
		}
		out.WriteString(s[i:end])
		out.WriteByte('\n')
	}
	return out.String()
}

// DecodeText reverses EncodeText, tolerating embedded newlines from wrapping.
func DecodeText(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
	return base64.StdEncoding.DecodeString(s)
}

// Decoder reads a wire-encoded artifact field by field.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder wraps a byte encoding for reading. It fails with a non-nil
// error from ReadByte/ReadField as soon as the buffer is exhausted
// prematurely.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{r: bufio.NewReader(bytes.NewReader(b))}
}

// ReadByte reads the next raw byte (scheme code or key kind).
func (d *Decoder) ReadByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("wire: truncated buffer: %w", err)
	}
	return b, nil
}

// ReadKeyKind reads the key-kind byte.
func (d *Decoder) ReadKeyKind() (KeyKind, error) {
	b, err := d.ReadByte()
	return KeyKind(b), err
}

// ReadField reads one length-prefixed field, returning a nil slice for a
// zero-length (absent) field.
func (d *Decoder) ReadField() ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(d.r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("wire: truncated length prefix: %w", err)
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, fmt.Errorf("wire: truncated field (want %d bytes): %w", n, err)
	}
	return buf, nil
}

// ReadPoint reads a point field into a fresh element of group g, or returns
// nil for an absent field.
func (d *Decoder) ReadPoint(g kyber.Group) (kyber.Point, error) {
	b, err := d.ReadField()
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	p := g.Point()
	if err := p.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("wire: invalid point: %w", err)
	}
	return p, nil
}

// ReadScalar reads a scalar field into a fresh element of group g, or
// returns nil for an absent field.
func (d *Decoder) ReadScalar(g kyber.Group) (kyber.Scalar, error) {
	b, err := d.ReadField()
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	s := g.Scalar()
	if err := s.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("wire: invalid scalar: %w", err)
	}
	return s, nil
}
