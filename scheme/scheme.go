// Package scheme implements the scheme-agnostic dispatch layer: an 8-bit
// scheme code, a static registry of descriptors, and lookup by code or
// name. Concrete backends under scheme/bbs04, scheme/gl19, etc. register
// themselves here from an init() function; the root groupsig package then
// dispatches purely through this registry, never importing a backend
// directly.
package scheme

import (
	"strings"
	"sync"

	"github.com/drand/kyber"

	"github.com/groupsig/groupsig/gserr"
	"github.com/groupsig/groupsig/internal/engine"
)

// Code is the one-byte scheme tag carried by every exported artifact.
type Code uint8

// The six scheme codes this module implements.
const (
	BBS04 Code = iota + 1
	GL19
	PS16
	KLAP20
	DL21
	DL21SEQ
)

func (c Code) String() string {
	if d, ok := lookupByCode(c); ok {
		return d.Name
	}
	return "unknown"
}

// Descriptor is the static, per-scheme capability record, extended with
// flags for the operations only some schemes additionally support.
type Descriptor struct {
	Code Code
	Name string

	HasGML       bool
	HasCRL       bool
	HasOpenProof bool
	UsesPairings bool

	SupportsBlind   bool
	SupportsLink    bool
	SupportsSeqLink bool

	IssuerKeyIndex int
	OpenerKeyIndex int
}

// Backend is the vtable every concrete scheme registers. Error-returning
// operations a scheme's descriptor does not advertise support for return
// engine.ErrUnsupported; the boolean verifiers return false.
//
// Every method operates on internal/engine's concrete types rather than the
// public groupkey/gsig/gml/crl/identity wrappers, since those packages
// import scheme for its Code type and would otherwise form an import
// cycle; the root groupsig package is the adapter that converts between
// the two at the public API boundary.
type Backend interface {
	Descriptor() Descriptor

	Setup(env engine.RandSource) (*engine.GroupKey, *engine.IssuerKey, *engine.OpenerKey, error)

	JoinMemberStep(env engine.RandSource, gk *engine.GroupKey, mk *engine.MemberKey, step int, in *engine.JoinMsg) (*engine.JoinMsg, error)
	JoinIssuerStep(isskey *engine.IssuerKey, gml *engine.GML, step int, in *engine.JoinMsg) (*engine.JoinMsg, error)

	Sign(env engine.RandSource, gk *engine.GroupKey, mk *engine.MemberKey, msg, scope []byte, seed *uint64) (*engine.Signature, error)
	Verify(gk *engine.GroupKey, sig *engine.Signature, msg, scope []byte) bool
	VerifyBatch(gk *engine.GroupKey, sigs []*engine.Signature, msgs, scopes [][]byte) bool

	Open(ok *engine.OpenerKey, gml *engine.GML, sig *engine.Signature) (int, kyber.Point, error)
	OpenProof(env engine.RandSource, gk *engine.GroupKey, ok *engine.OpenerKey, sig *engine.Signature, identity kyber.Point) (*engine.Proof, error)
	OpenVerify(gk *engine.GroupKey, sig *engine.Signature, identity kyber.Point, proof *engine.Proof) bool

	Reveal(gml *engine.GML, idx int) (kyber.Point, error)
	Trace(gk *engine.GroupKey, ok *engine.OpenerKey, gml *engine.GML, crl *engine.CRL, sig *engine.Signature) (bool, error)

	Identify(mk *engine.MemberKey, sig *engine.Signature, msg []byte) bool
	Claim(env engine.RandSource, mk *engine.MemberKey, sig *engine.Signature, msg []byte) (*engine.Proof, error)
	ClaimVerify(sig *engine.Signature, msg []byte, proof *engine.Proof) bool

	ProveEquality(env engine.RandSource, mk *engine.MemberKey, sigs []*engine.Signature, scopes [][]byte) (*engine.Proof, error)
	ProveEqualityVerify(sigs []*engine.Signature, scopes [][]byte, proof *engine.Proof) bool
	VerifySeqLink(sigs []*engine.Signature, scope []byte, firstSeed uint64, proof *engine.Proof) bool

	Blind(env engine.RandSource, gk *engine.GroupKey, sig *engine.Signature, msg []byte, blindPub kyber.Point) (*engine.BlindSignature, error)
	Convert(env engine.RandSource, ok *engine.OpenerKey, batch []*engine.BlindSignature) ([]*engine.BlindSignature, error)
	Unblind(bk *engine.BlindKey, converted *engine.BlindSignature) (kyber.Point, kyber.Point, error)
}

var (
	mu         sync.RWMutex
	byCode     = map[Code]Backend{}
	descByCode = map[Code]Descriptor{}
)

// Register installs backend under its own descriptor's code. Called from
// each scheme package's init(); panics on a duplicate code since that can
// only indicate a programming error, never bad input.
func Register(backend Backend) {
	mu.Lock()
	defer mu.Unlock()
	d := backend.Descriptor()
	if _, exists := byCode[d.Code]; exists {
		panic("scheme: duplicate registration for code " + d.Name)
	}
	byCode[d.Code] = backend
	descByCode[d.Code] = d
}

func lookupByCode(c Code) (Descriptor, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := descByCode[c]
	return d, ok
}

// Lookup resolves a registered backend by code.
func Lookup(c Code) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()
	b, ok := byCode[c]
	if !ok {
		return nil, gserr.InvalidArg("scheme.Lookup", errUnknownCode(c))
	}
	return b, nil
}

// LookupByName resolves a registered backend by case-insensitive name.
func LookupByName(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()
	for code, d := range descByCode {
		if strings.EqualFold(d.Name, name) {
			return byCode[code], nil
		}
	}
	return nil, gserr.InvalidArg("scheme.LookupByName", errUnknownName(name))
}

// IsSupported reports whether code names a registered scheme.
func IsSupported(c Code) bool {
	_, ok := lookupByCode(c)
	return ok
}

// Descriptors returns every registered scheme's descriptor, in code order,
// for ListSchemes-style enumeration.
func Descriptors() []Descriptor {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Descriptor, 0, len(descByCode))
	for c := BBS04; c <= DL21SEQ; c++ {
		if d, ok := descByCode[c]; ok {
			out = append(out, d)
		}
	}
	return out
}

type errUnknownCode Code

func (e errUnknownCode) Error() string { return "scheme: no scheme registered for this code" }

type errUnknownName string

func (e errUnknownName) Error() string { return "scheme: no scheme registered with name " + string(e) }
