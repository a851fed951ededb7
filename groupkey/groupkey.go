// Package groupkey implements the five key containers this module works
// with: the group's public key, the issuer/manager secret, the
// opener/inspector secret, a member's enrollment credential, and a
// blind-scheme receiver's key pair - each with the init/export/import
// lifecycle common to every scheme this module implements.
package groupkey

import (
	"fmt"

	"github.com/drand/kyber"

	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/scheme"
	"github.com/groupsig/groupsig/wire"
)

// Group is the public group key: every field a verifier needs.
type Group struct {
	Code   scheme.Code
	Engine *engine.GroupKey
}

// Export serializes the group key.
func (k *Group) Export() ([]byte, error) {
	e := wire.NewEncoder(byte(k.Code))
	e.WriteKeyKind(wire.KeyKindGroup)
	if err := e.WritePoint(k.Engine.What); err != nil {
		return nil, err
	}
	if err := e.WritePoint(k.Engine.OpenerPubG1); err != nil {
		return nil, err
	}
	if err := e.WritePoint(k.Engine.OpenerPubG2); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// ImportGroup parses a serialized group key whose G1/G2 points live in g1,
// g2.
func ImportGroup(g1, g2 kyber.Group, data []byte) (*Group, error) {
	d := wire.NewDecoder(data)
	code, err := readHeader(d, wire.KeyKindGroup)
	if err != nil {
		return nil, err
	}
	what, err := d.ReadPoint(g2)
	if err != nil {
		return nil, err
	}
	openerG1, err := d.ReadPoint(g1)
	if err != nil {
		return nil, err
	}
	openerG2, err := d.ReadPoint(g2)
	if err != nil {
		return nil, err
	}
	return &Group{Code: code, Engine: &engine.GroupKey{What: what, OpenerPubG1: openerG1, OpenerPubG2: openerG2}}, nil
}

// Issuer is the issuer/manager secret key.
type Issuer struct {
	Code   scheme.Code
	Engine *engine.IssuerKey
}

// Export serializes the issuer key.
func (k *Issuer) Export() ([]byte, error) {
	e := wire.NewEncoder(byte(k.Code))
	e.WriteKeyKind(wire.KeyKindIssuer)
	if err := e.WriteScalar(k.Engine.Gamma); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// ImportIssuer parses a serialized issuer key whose scalar lives in fr.
func ImportIssuer(fr kyber.Group, data []byte) (*Issuer, error) {
	d := wire.NewDecoder(data)
	code, err := readHeader(d, wire.KeyKindIssuer)
	if err != nil {
		return nil, err
	}
	gamma, err := d.ReadScalar(fr)
	if err != nil {
		return nil, err
	}
	return &Issuer{Code: code, Engine: &engine.IssuerKey{Gamma: gamma}}, nil
}

// Opener is the opener/inspector secret key.
type Opener struct {
	Code   scheme.Code
	Engine *engine.OpenerKey
}

// Export serializes the opener key.
func (k *Opener) Export() ([]byte, error) {
	e := wire.NewEncoder(byte(k.Code))
	e.WriteKeyKind(wire.KeyKindOpener)
	if err := e.WriteScalar(k.Engine.Xi); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// ImportOpener parses a serialized opener key whose scalar lives in fr.
func ImportOpener(fr kyber.Group, data []byte) (*Opener, error) {
	d := wire.NewDecoder(data)
	code, err := readHeader(d, wire.KeyKindOpener)
	if err != nil {
		return nil, err
	}
	xi, err := d.ReadScalar(fr)
	if err != nil {
		return nil, err
	}
	return &Opener{Code: code, Engine: &engine.OpenerKey{Xi: xi}}, nil
}

// Member is a member's enrollment credential. Complete is false mid-join,
// when X has been drawn but the issued credential A has not yet arrived -
// exporting an incomplete key writes an absent marker for A.
type Member struct {
	Code   scheme.Code
	Engine *engine.MemberKey
}

// Export serializes the member key, writing an absent A field if the join
// that would produce it has not completed.
func (k *Member) Export() ([]byte, error) {
	e := wire.NewEncoder(byte(k.Code))
	e.WriteKeyKind(wire.KeyKindMember)
	if err := e.WriteScalar(k.Engine.X); err != nil {
		return nil, err
	}
	var a kyber.Point
	if k.Engine.Complete {
		a = k.Engine.A
	}
	if err := e.WritePoint(a); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// ImportMember parses a serialized member key.
func ImportMember(fr kyber.Group, g1 kyber.Group, data []byte) (*Member, error) {
	d := wire.NewDecoder(data)
	code, err := readHeader(d, wire.KeyKindMember)
	if err != nil {
		return nil, err
	}
	x, err := d.ReadScalar(fr)
	if err != nil {
		return nil, err
	}
	a, err := d.ReadPoint(g1)
	if err != nil {
		return nil, err
	}
	return &Member{Code: code, Engine: &engine.MemberKey{X: x, A: a, Complete: a != nil}}, nil
}

// Blinding is a blind-scheme receiver's key pair. Priv is nil for a
// public-only handle.
type Blinding struct {
	Code   scheme.Code
	Engine *engine.BlindKey
}

// Export serializes the blinding key, writing an absent Priv field for a
// public-only handle.
func (k *Blinding) Export() ([]byte, error) {
	e := wire.NewEncoder(byte(k.Code))
	e.WriteKeyKind(wire.KeyKindBlinding)
	if err := e.WritePoint(k.Engine.Pub); err != nil {
		return nil, err
	}
	if err := e.WriteScalar(k.Engine.Priv); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// ImportBlinding parses a serialized blinding key.
func ImportBlinding(g1, fr kyber.Group, data []byte) (*Blinding, error) {
	d := wire.NewDecoder(data)
	code, err := readHeader(d, wire.KeyKindBlinding)
	if err != nil {
		return nil, err
	}
	pub, err := d.ReadPoint(g1)
	if err != nil {
		return nil, err
	}
	priv, err := d.ReadScalar(fr)
	if err != nil {
		return nil, err
	}
	return &Blinding{Code: code, Engine: &engine.BlindKey{Pub: pub, Priv: priv}}, nil
}

func readHeader(d *wire.Decoder, want wire.KeyKind) (scheme.Code, error) {
	codeByte, err := d.ReadByte()
	if err != nil {
		return 0, err
	}
	kind, err := d.ReadKeyKind()
	if err != nil {
		return 0, err
	}
	if kind != want {
		return 0, fmt.Errorf("groupkey: key-kind mismatch: got %d, want %d", kind, want)
	}
	return scheme.Code(codeByte), nil
}
