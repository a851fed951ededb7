// Package groupsig is the root facade of the module: the scheme-agnostic
// API surface for setup, join, sign, verify, open, trace, claim and blind
// operations, dispatching through the scheme registry and converting
// between the public key/signature/identity containers and
// internal/engine's concrete types at the boundary.
package groupsig

import (
	"errors"
	"fmt"

	"github.com/drand/kyber"
	"github.com/hashicorp/go-multierror"

	"github.com/groupsig/groupsig/crl"
	"github.com/groupsig/groupsig/gml"
	"github.com/groupsig/groupsig/groupkey"
	"github.com/groupsig/groupsig/gserr"
	"github.com/groupsig/groupsig/gsig"
	"github.com/groupsig/groupsig/identity"
	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/join"
	"github.com/groupsig/groupsig/message"
	"github.com/groupsig/groupsig/scheme"
	_ "github.com/groupsig/groupsig/scheme/bbs04"
	_ "github.com/groupsig/groupsig/scheme/dl21"
	_ "github.com/groupsig/groupsig/scheme/dl21seq"
	_ "github.com/groupsig/groupsig/scheme/gl19"
	_ "github.com/groupsig/groupsig/scheme/klap20"
	_ "github.com/groupsig/groupsig/scheme/ps16"
	"github.com/groupsig/groupsig/sysenv"
)

// Rand is the randomness source every operation below draws from; an
// *sysenv.Environment satisfies it directly.
type Rand = engine.RandSource

func backendFor(code scheme.Code) (scheme.Backend, scheme.Descriptor, error) {
	b, err := scheme.Lookup(code)
	if err != nil {
		return nil, scheme.Descriptor{}, err
	}
	return b, b.Descriptor(), nil
}

// ListSchemes enumerates every registered scheme's descriptor, in code order.
func ListSchemes() []scheme.Descriptor {
	return scheme.Descriptors()
}

// Setup runs key generation for code, returning the group's public key, the
// issuer's secret key, and the opener's secret key.
func Setup(code scheme.Code, env Rand) (*groupkey.Group, *groupkey.Issuer, *groupkey.Opener, error) {
	b, _, err := backendFor(code)
	if err != nil {
		return nil, nil, nil, err
	}
	gk, isskey, ok, err := b.Setup(env)
	if err != nil {
		return nil, nil, nil, gserr.Internalf("groupsig.Setup", err)
	}
	return &groupkey.Group{Code: code, Engine: gk},
		&groupkey.Issuer{Code: code, Engine: isskey},
		&groupkey.Opener{Code: code, Engine: ok},
		nil
}

// NewGML returns an empty membership list for code.
func NewGML(code scheme.Code) *gml.GML { return gml.New(code) }

// NewCRL returns an empty revocation list for code.
func NewCRL(code scheme.Code) *crl.CRL { return crl.New(code) }

// StartJoin begins a member-side enrollment session, drawing a fresh secret
// into mk and producing the session's first message.
func StartJoin(gk *groupkey.Group, env Rand) (*join.Session, *engine.JoinMsg, *groupkey.Member, error) {
	b, _, err := backendFor(gk.Code)
	if err != nil {
		return nil, nil, nil, err
	}
	mk := &engine.MemberKey{}
	sess := join.NewMemberSession(b)
	msg, err := sess.Start(env, gk.Engine, mk)
	if err != nil {
		return nil, nil, nil, gserr.Internalf("groupsig.StartJoin", err)
	}
	return sess, msg, &groupkey.Member{Code: gk.Code, Engine: mk}, nil
}

// Issue consumes a member's join request and produces the issued credential,
// recording the new member in list.
func Issue(isskey *groupkey.Issuer, list *gml.GML, in *engine.JoinMsg) (*engine.JoinMsg, error) {
	b, _, err := backendFor(isskey.Code)
	if err != nil {
		return nil, err
	}
	sess := join.NewIssuerSession(b)
	out, err := sess.Issue(isskey.Engine, list.Internal(), in)
	if err != nil {
		return nil, gserr.Internalf("groupsig.Issue", err)
	}
	return out, nil
}

// FinishJoin consumes the issuer's reply, completing mk in place.
func FinishJoin(sess *join.Session, gk *groupkey.Group, mk *groupkey.Member, env Rand, in *engine.JoinMsg) error {
	if err := sess.Finish(env, gk.Engine, mk.Engine, in); err != nil {
		return gserr.Internalf("groupsig.FinishJoin", err)
	}
	return nil
}

// Sign produces a group signature over msg. scope is nil unless gk's scheme
// supports linkability, in which case it binds the resulting pseudonym; seed
// fixes the per-signature randomness for reproducible runs and is required
// when the scheme additionally supports sequential linking.
func Sign(gk *groupkey.Group, mk *groupkey.Member, env Rand, msg message.Message, seed *uint64) (*gsig.Signature, error) {
	b, _, err := backendFor(gk.Code)
	if err != nil {
		return nil, err
	}
	payload, err := msg.Bytes()
	if err != nil {
		return nil, gserr.InvalidArg("groupsig.Sign", err)
	}
	sig, err := b.Sign(env, gk.Engine, mk.Engine, payload, msg.Scope, seed)
	if errors.Is(err, engine.ErrUnsupported) {
		return nil, gserr.Unsupport("groupsig.Sign")
	}
	if err != nil {
		return nil, gserr.Internalf("groupsig.Sign", err)
	}
	return &gsig.Signature{Code: gk.Code, Engine: sig}, nil
}

// Verify checks sig over msg.
func Verify(gk *groupkey.Group, sig *gsig.Signature, msg message.Message) (bool, error) {
	if gk.Code != sig.Code {
		return false, gserr.InvalidArg("groupsig.Verify", errSchemeMismatch{gk.Code, sig.Code})
	}
	b, _, err := backendFor(gk.Code)
	if err != nil {
		return false, err
	}
	payload, err := msg.Bytes()
	if err != nil {
		return false, gserr.InvalidArg("groupsig.Verify", err)
	}
	return b.Verify(gk.Engine, sig.Engine, payload, msg.Scope), nil
}

// VerifyBatch checks every signature in sigs against its corresponding
// message in msgs.
func VerifyBatch(gk *groupkey.Group, sigs []*gsig.Signature, msgs []message.Message) (bool, error) {
	engSigs := make([]*engine.Signature, len(sigs))
	payloads := make([][]byte, len(msgs))
	scopes := make([][]byte, len(msgs))
	for i, s := range sigs {
		if s.Code != gk.Code {
			return false, gserr.InvalidArg("groupsig.VerifyBatch", errSchemeMismatch{gk.Code, s.Code})
		}
		engSigs[i] = s.Engine
	}
	for i, m := range msgs {
		p, err := m.Bytes()
		if err != nil {
			return false, gserr.InvalidArg("groupsig.VerifyBatch", err)
		}
		payloads[i] = p
		scopes[i] = m.Scope
	}
	b, _, err := backendFor(gk.Code)
	if err != nil {
		return false, err
	}
	return b.VerifyBatch(gk.Engine, engSigs, payloads, scopes), nil
}

// VerifyBatchDetailed checks each signature individually and aggregates the
// per-index failures into a single error, the way drand's broadcast/reshare
// paths aggregate partial failures with go-multierror instead of failing the
// whole batch on the first bad entry.
func VerifyBatchDetailed(gk *groupkey.Group, sigs []*gsig.Signature, msgs []message.Message) error {
	b, _, err := backendFor(gk.Code)
	if err != nil {
		return err
	}
	var result *multierror.Error
	for i, s := range sigs {
		if s.Code != gk.Code {
			result = multierror.Append(result, fmt.Errorf("signature %d: %w", i, errSchemeMismatch{gk.Code, s.Code}))
			continue
		}
		payload, err := msgs[i].Bytes()
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("signature %d: %w", i, err))
			continue
		}
		if !b.Verify(gk.Engine, s.Engine, payload, msgs[i].Scope) {
			result = multierror.Append(result, fmt.Errorf("signature %d: %w", i, gserr.ErrFail))
		}
	}
	return result.ErrorOrNil()
}

// Open recovers the signer's identity: a GML index for schemes that
// maintain one, or an opaque pseudonym otherwise.
func Open(ok *groupkey.Opener, list *gml.GML, sig *gsig.Signature) (identity.Identity, error) {
	b, d, err := backendFor(ok.Code)
	if err != nil {
		return identity.Identity{}, err
	}
	var engList *engine.GML
	if list != nil {
		engList = list.Internal()
	}
	idx, pseudo, err := b.Open(ok.Engine, engList, sig.Engine)
	if err != nil {
		return identity.Identity{}, gserr.Failf("groupsig.Open", err)
	}
	if d.HasGML {
		return identity.FromIndex(idx), nil
	}
	return identity.FromPseudonym(pseudo), nil
}

// OpenProof produces a proof that id was obtained by correctly opening sig
// under ok's public commitment, for schemes advertising HasOpenProof.
func OpenProof(gk *groupkey.Group, ok *groupkey.Opener, env Rand, sig *gsig.Signature, id identity.Identity) (*gsig.Proof, error) {
	b, _, err := backendFor(gk.Code)
	if err != nil {
		return nil, err
	}
	p, ok2 := id.Pseudonym()
	if !ok2 {
		return nil, gserr.InvalidArg("groupsig.OpenProof", errIdentityNotPseudonym{})
	}
	proof, err := b.OpenProof(env, gk.Engine, ok.Engine, sig.Engine, p)
	if err != nil {
		return nil, gserr.Unsupport("groupsig.OpenProof")
	}
	return &gsig.Proof{Code: gk.Code, Engine: proof}, nil
}

// OpenVerify checks a proof produced by OpenProof.
func OpenVerify(gk *groupkey.Group, sig *gsig.Signature, id identity.Identity, proof *gsig.Proof) bool {
	b, _, err := backendFor(gk.Code)
	if err != nil {
		return false
	}
	p, ok := id.Pseudonym()
	if !ok {
		return false
	}
	return b.OpenVerify(gk.Engine, sig.Engine, p, proof.Engine)
}

// Reveal returns the tracing trapdoor for the member at GML index idx, for
// schemes maintaining a CRL.
func Reveal(list *gml.GML, idx int) (kyber.Point, error) {
	b, _, err := backendFor(list.Code)
	if err != nil {
		return nil, err
	}
	p, err := b.Reveal(list.Internal(), idx)
	if err != nil {
		return nil, gserr.Unsupport("groupsig.Reveal")
	}
	return p, nil
}

// Trace reports whether sig was produced by a revoked member, without
// necessarily recovering their identity.
func Trace(gk *groupkey.Group, ok *groupkey.Opener, list *gml.GML, revoked *crl.CRL, sig *gsig.Signature) (bool, error) {
	b, _, err := backendFor(gk.Code)
	if err != nil {
		return false, err
	}
	var engList *engine.GML
	if list != nil {
		engList = list.Internal()
	}
	var engOk *engine.OpenerKey
	if ok != nil {
		engOk = ok.Engine
	}
	traced, err := b.Trace(gk.Engine, engOk, engList, revoked.Internal(), sig.Engine)
	if errors.Is(err, engine.ErrUnsupported) {
		return false, gserr.Unsupport("groupsig.Trace")
	}
	if err != nil {
		return false, gserr.Internalf("groupsig.Trace", err)
	}
	return traced, nil
}

// Identify reports whether sig was produced by mk's own secret, without
// involving the opener.
func Identify(mk *groupkey.Member, sig *gsig.Signature, msg message.Message) (bool, error) {
	b, _, err := backendFor(mk.Code)
	if err != nil {
		return false, err
	}
	payload, err := msg.Bytes()
	if err != nil {
		return false, gserr.InvalidArg("groupsig.Identify", err)
	}
	return b.Identify(mk.Engine, sig.Engine, payload), nil
}

// Claim produces a proof that mk authored sig, usable by any verifier.
func Claim(mk *groupkey.Member, env Rand, sig *gsig.Signature, msg message.Message) (*gsig.Proof, error) {
	b, _, err := backendFor(mk.Code)
	if err != nil {
		return nil, err
	}
	payload, err := msg.Bytes()
	if err != nil {
		return nil, gserr.InvalidArg("groupsig.Claim", err)
	}
	proof, err := b.Claim(env, mk.Engine, sig.Engine, payload)
	if err != nil {
		return nil, gserr.Failf("groupsig.Claim", err)
	}
	return &gsig.Proof{Code: mk.Code, Engine: proof}, nil
}

// ClaimVerify checks a proof produced by Claim.
func ClaimVerify(code scheme.Code, sig *gsig.Signature, msg message.Message, proof *gsig.Proof) bool {
	b, _, err := backendFor(code)
	if err != nil {
		return false
	}
	payload, err := msg.Bytes()
	if err != nil {
		return false
	}
	return b.ClaimVerify(sig.Engine, payload, proof.Engine)
}

// ProveEquality proves that every signature in sigs, each scoped by the
// corresponding entry of scopes, was produced by mk, for link-capable
// schemes.
func ProveEquality(mk *groupkey.Member, env Rand, sigs []*gsig.Signature, scopes [][]byte) (*gsig.Proof, error) {
	b, _, err := backendFor(mk.Code)
	if err != nil {
		return nil, err
	}
	engSigs := make([]*engine.Signature, len(sigs))
	for i, s := range sigs {
		engSigs[i] = s.Engine
	}
	proof, err := b.ProveEquality(env, mk.Engine, engSigs, scopes)
	if errors.Is(err, engine.ErrNoMatch) {
		return nil, gserr.Failf("groupsig.ProveEquality", err)
	}
	if err != nil {
		return nil, gserr.Unsupport("groupsig.ProveEquality")
	}
	return &gsig.Proof{Code: mk.Code, Engine: proof}, nil
}

// ProveEqualityVerify checks a proof produced by ProveEquality.
func ProveEqualityVerify(code scheme.Code, sigs []*gsig.Signature, scopes [][]byte, proof *gsig.Proof) bool {
	b, _, err := backendFor(code)
	if err != nil {
		return false
	}
	engSigs := make([]*engine.Signature, len(sigs))
	for i, s := range sigs {
		engSigs[i] = s.Engine
	}
	return b.ProveEqualityVerify(engSigs, scopes, proof.Engine)
}

// VerifySeqLink checks that sigs form an unbroken, correctly-ordered
// sequential-linking chain starting at firstSeed, for seqlink-capable
// schemes.
func VerifySeqLink(code scheme.Code, sigs []*gsig.Signature, scope []byte, firstSeed uint64, proof *gsig.Proof) bool {
	b, _, err := backendFor(code)
	if err != nil {
		return false
	}
	engSigs := make([]*engine.Signature, len(sigs))
	for i, s := range sigs {
		engSigs[i] = s.Engine
	}
	return b.VerifySeqLink(engSigs, scope, firstSeed, proof.Engine)
}

// Blind produces a blind signature from sig, encrypted so that after Convert
// only the receiver holding the private half of blindPub can recover the
// signer's pseudonym.
func Blind(gk *groupkey.Group, env Rand, sig *gsig.Signature, msg message.Message, blindPub *groupkey.Blinding) (*gsig.BlindSignature, error) {
	b, _, err := backendFor(gk.Code)
	if err != nil {
		return nil, err
	}
	payload, err := msg.Bytes()
	if err != nil {
		return nil, gserr.InvalidArg("groupsig.Blind", err)
	}
	bs, err := b.Blind(env, gk.Engine, sig.Engine, payload, blindPub.Engine.Pub)
	if err != nil {
		return nil, gserr.Unsupport("groupsig.Blind")
	}
	return &gsig.BlindSignature{Code: gk.Code, Engine: bs}, nil
}

// Convert strips the group-key encryption layer from each signature in
// batch using ok's secret, rerandomizes the remaining blinding-key layer,
// and returns the batch in shuffled order.
func Convert(code scheme.Code, ok *groupkey.Opener, env Rand, batch []*gsig.BlindSignature) ([]*gsig.BlindSignature, error) {
	b, _, err := backendFor(code)
	if err != nil {
		return nil, err
	}
	engBatch := make([]*engine.BlindSignature, len(batch))
	for i, s := range batch {
		engBatch[i] = s.Engine
	}
	out, err := b.Convert(env, ok.Engine, engBatch)
	if err != nil {
		return nil, gserr.Unsupport("groupsig.Convert")
	}
	result := make([]*gsig.BlindSignature, len(out))
	for i, s := range out {
		result[i] = &gsig.BlindSignature{Code: code, Engine: s}
	}
	return result, nil
}

// Unblind recovers the signer's pseudonym and the signed message digest from
// a converted blind signature, using the receiver's blinding secret key.
func Unblind(bk *groupkey.Blinding, converted *gsig.BlindSignature) (kyber.Point, kyber.Point, error) {
	b, _, err := backendFor(bk.Code)
	if err != nil {
		return nil, nil, err
	}
	pseudonym, digest, err := b.Unblind(bk.Engine, converted.Engine)
	if err != nil {
		return nil, nil, gserr.Unsupport("groupsig.Unblind")
	}
	return pseudonym, digest, nil
}

// NewEnvironment is a convenience wrapper around sysenv.New.
func NewEnvironment(seed []byte) (*sysenv.Environment, error) { return sysenv.New(seed) }

type errSchemeMismatch struct {
	want, got scheme.Code
}

func (e errSchemeMismatch) Error() string {
	return "groupsig: scheme tag mismatch between arguments"
}

type errIdentityNotPseudonym struct{}

func (e errIdentityNotPseudonym) Error() string {
	return "groupsig: identity is a GML index, not a pseudonym"
}
