// Package gsig implements the signature, blind-signature and proof
// containers: each is a tuple of group elements plus a Fiat-Shamir
// Sigma-protocol transcript, with the same export/import lifecycle as
// groupkey's key containers.
package gsig

import (
	"encoding/binary"
	"fmt"

	"github.com/drand/kyber"

	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
	"github.com/groupsig/groupsig/wire"
)

// Signature wraps a scheme-agnostic group signature.
type Signature struct {
	Code   scheme.Code
	Engine *engine.Signature
}

// Export serializes the signature.
func (s *Signature) Export() ([]byte, error) {
	e := wire.NewEncoder(byte(s.Code))
	sig := s.Engine
	for _, p := range []kyber.Point{sig.C1, sig.C2} {
		if err := e.WritePoint(p); err != nil {
			return nil, err
		}
	}
	e.WriteField(sig.Salt)
	for _, sc := range []kyber.Scalar{sig.Challenge, sig.Sx, sig.Sr, sig.Sdelta} {
		if err := e.WriteScalar(sc); err != nil {
			return nil, err
		}
	}
	if err := e.WritePoint(sig.Nym); err != nil {
		return nil, err
	}
	var seedBuf [8]byte
	binary.BigEndian.PutUint64(seedBuf[:], sig.Seed)
	e.WriteField(seedBuf[:])
	return e.Bytes(), nil
}

// ImportSignature parses a serialized signature whose points live in g1.
func ImportSignature(g1, fr kyber.Group, data []byte) (*Signature, error) {
	d := wire.NewDecoder(data)
	codeByte, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	c1, err := d.ReadPoint(g1)
	if err != nil {
		return nil, err
	}
	c2, err := d.ReadPoint(g1)
	if err != nil {
		return nil, err
	}
	salt, err := d.ReadField()
	if err != nil {
		return nil, err
	}
	challenge, err := d.ReadScalar(fr)
	if err != nil {
		return nil, err
	}
	sx, err := d.ReadScalar(fr)
	if err != nil {
		return nil, err
	}
	sr, err := d.ReadScalar(fr)
	if err != nil {
		return nil, err
	}
	sdelta, err := d.ReadScalar(fr)
	if err != nil {
		return nil, err
	}
	nym, err := d.ReadPoint(g1)
	if err != nil {
		return nil, err
	}
	seedField, err := d.ReadField()
	if err != nil {
		return nil, err
	}
	if len(seedField) != 8 {
		return nil, fmt.Errorf("gsig: malformed seed field")
	}
	return &Signature{
		Code: scheme.Code(codeByte),
		Engine: &engine.Signature{
			C1: c1, C2: c2, Salt: salt,
			Challenge: challenge, Sx: sx, Sr: sr, Sdelta: sdelta,
			Nym: nym, Seed: binary.BigEndian.Uint64(seedField),
		},
	}, nil
}

// BlindSignature wraps a blind/convert/unblind intermediate signature.
type BlindSignature struct {
	Code   scheme.Code
	Engine *engine.BlindSignature
}

// Export serializes the blind signature.
func (s *BlindSignature) Export() ([]byte, error) {
	e := wire.NewEncoder(byte(s.Code))
	bs := s.Engine
	for _, p := range []kyber.Point{bs.BlindPub, bs.C1Opener, bs.C1Blind, bs.C2, bs.E1, bs.E2} {
		if err := e.WritePoint(p); err != nil {
			return nil, err
		}
	}
	return e.Bytes(), nil
}

// ImportBlindSignature parses a serialized blind signature whose points
// live in g1.
func ImportBlindSignature(g1 kyber.Group, data []byte) (*BlindSignature, error) {
	d := wire.NewDecoder(data)
	codeByte, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	pts := make([]kyber.Point, 6)
	for i := range pts {
		pts[i], err = d.ReadPoint(g1)
		if err != nil {
			return nil, err
		}
	}
	return &BlindSignature{
		Code: scheme.Code(codeByte),
		Engine: &engine.BlindSignature{
			BlindPub: pts[0], C1Opener: pts[1], C1Blind: pts[2], C2: pts[3], E1: pts[4], E2: pts[5],
		},
	}, nil
}

// Proof wraps the shared Schnorr-style transcript used by open_verify,
// claim, link/prove_equality and seqlink.
type Proof struct {
	Code   scheme.Code
	Engine *engine.Proof
}

// Export serializes the proof: a count-prefixed list of commitment points,
// then the challenge and response scalars.
func (p *Proof) Export() ([]byte, error) {
	e := wire.NewEncoder(byte(p.Code))
	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(len(p.Engine.Commits)))
	e.WriteField(countBuf[:])
	for _, c := range p.Engine.Commits {
		if err := e.WritePoint(c); err != nil {
			return nil, err
		}
	}
	if err := e.WriteScalar(p.Engine.Challenge); err != nil {
		return nil, err
	}
	if err := e.WriteScalar(p.Engine.Response); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// ImportProof parses a serialized proof whose points/scalars live in g1/fr.
func ImportProof(g1, fr kyber.Group, data []byte) (*Proof, error) {
	d := wire.NewDecoder(data)
	codeByte, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	countField, err := d.ReadField()
	if err != nil {
		return nil, err
	}
	if len(countField) != 4 {
		return nil, fmt.Errorf("gsig: malformed commitment count")
	}
	n := binary.BigEndian.Uint32(countField)
	commits := make([]kyber.Point, n)
	for i := range commits {
		commits[i], err = d.ReadPoint(g1)
		if err != nil {
			return nil, err
		}
	}
	challenge, err := d.ReadScalar(fr)
	if err != nil {
		return nil, err
	}
	response, err := d.ReadScalar(fr)
	if err != nil {
		return nil, err
	}
	return &Proof{
		Code:   scheme.Code(codeByte),
		Engine: &engine.Proof{Commits: commits, Challenge: challenge, Response: response},
	}, nil
}
