package engine

import "github.com/drand/kyber"

// Capabilities parameterizes the shared engine for one concrete scheme. Its
// fields mirror the descriptor flags (has_gml, has_crl, has_open_proof),
// add NativeTrace, and carry the three flags for the operations only some
// schemes additionally support.
type Capabilities struct {
	Code byte
	Name string

	HasGML       bool // open resolves the credential to a GML index
	HasCRL       bool // the scheme maintains a revocation list at all
	NativeTrace  bool // trace needs only grpkey+crl, no opener key or GML
	HasOpenProof bool // open additionally emits a verifiable proof

	SupportsBlind   bool // blind/convert/unblind
	SupportsLink    bool // identify/link/prove_equality (scope-bound Nym)
	SupportsSeqLink bool // seqlink/verify_seqlink (chained Nym)

	IssuerKeyIndex int
	OpenerKeyIndex int
}

// GroupKey is the public, scheme-agnostic part of a group: the issuer's
// public commitment to γ in G2, and the opener's public key published in
// both G1 and G2 so native-trace schemes can check revocation without the
// opener's secret (see Trace in open.go).
type GroupKey struct {
	What        kyber.Point // G2: g2^gamma
	OpenerPubG1 kyber.Point // G1: g1^xi
	OpenerPubG2 kyber.Point // G2: g2^xi
}

// IssuerKey is the issuer/manager secret: γ, the exponent signed into every
// member credential.
type IssuerKey struct {
	Gamma kyber.Scalar
}

// OpenerKey is the opener/inspector secret: ξ, the ElGamal decryption
// exponent for the credential ciphertext embedded in every signature.
type OpenerKey struct {
	Xi kyber.Scalar
}

// MemberKey is a member's enrollment credential: the secret x chosen at
// join time and the credential element A the issuer returns, satisfying
// e(A, What * g2^x) = e(g1, g2). Complete is false for a MemberKey mid-join
// (X set, A not yet received).
type MemberKey struct {
	X        kyber.Scalar
	A        kyber.Point
	Complete bool
}

// BlindKey is a rerandomizable-pseudonym receiver's key pair, used only by
// blind-capable schemes. Priv is nil for a public-only handle (the form the
// inspector/converter needs).
type BlindKey struct {
	Pub  kyber.Point // G1: g1^b
	Priv kyber.Scalar
}

// GMLEntry is one append-only membership record: the enrollment index, the
// member's credential element (what open() matches signatures against) and
// the member's public commitment (kept for audit, unused by open itself).
type GMLEntry struct {
	Index int
	A     kyber.Point
	Px    kyber.Point
}

// Signature is a scheme-agnostic group signature: an ElGamal encryption
// (C1, C2) of the signer's credential A under the group's opener key, a
// Fiat-Shamir challenge and its three Sigma-protocol responses, the public
// salt used to derive the per-signature randomness (see sign.go), and,
// for link-capable schemes, the scope-bound pseudonym Nym.
type Signature struct {
	C1, C2         kyber.Point
	Salt           []byte
	Challenge      kyber.Scalar
	Sx, Sr, Sdelta kyber.Scalar

	Nym  kyber.Point // nil unless the scheme supports link/seqlink
	Seed uint64      // chain position; 0 unless the scheme supports seqlink
}

// BlindSignature is the output of Blind: a double-ElGamal encryption of the
// signer's credential (first under the group opener key, then under the
// receiver-chosen blinding key) plus an encryption of the message digest
// under the same blinding key.
type BlindSignature struct {
	BlindPub kyber.Point
	C1Opener kyber.Point
	C1Blind  kyber.Point
	C2       kyber.Point
	E1, E2   kyber.Point
}

// Proof is the Schnorr-style Fiat-Shamir transcript shared by every
// secondary proof in this package: open_verify, claim, link,
// prove_equality and seqlink all reduce to one or more discrete-log
// equality statements bound by a single challenge and response.
type Proof struct {
	Commits   []kyber.Point
	Challenge kyber.Scalar
	Response  kyber.Scalar
}
