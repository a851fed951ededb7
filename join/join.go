// Package join implements the two-message member-enrollment session: a
// member draws a secret, an issuer signs it into a credential, and the
// member verifies what comes back before accepting membership. The Session
// type tracks which of the two fixed steps is next and rejects messages
// played out of order, in the same step-validation-table style as drand's
// dkg.Status transitions.
package join

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/groupsig/groupsig/internal/engine"
	"github.com/groupsig/groupsig/log"
	"github.com/groupsig/groupsig/scheme"
)

// Role distinguishes which side of the exchange a Session drives.
type Role int

const (
	RoleMember Role = iota
	RoleIssuer
)

func (r Role) String() string {
	if r == RoleMember {
		return "member"
	}
	return "issuer"
}

// Status is the Session's position in the two-step exchange.
type Status int

const (
	// StatusStart is the initial state, before either message is sent.
	StatusStart Status = iota
	// StatusAwaitingCredential is the member's state after sending step 0,
	// before the issuer's step-1 reply arrives.
	StatusAwaitingCredential
	// StatusComplete is reached once the member has verified the issued
	// credential, or the issuer has recorded it in the GML.
	StatusComplete
)

// Session drives one side of a join. It is not safe for concurrent use by
// multiple goroutines.
type Session struct {
	// ID correlates a member's and an issuer's logs for the same join
	// attempt, the way drand's DKG actions correlate log lines by epoch.
	ID      string
	role    Role
	backend scheme.Backend

	status Status
	// nextStep is the JoinMsg.Step value this Session expects to produce
	// or consume next.
	nextStep int
}

// NewMemberSession starts a member-side join against backend.
func NewMemberSession(backend scheme.Backend) *Session {
	return &Session{ID: uuid.NewString(), role: RoleMember, backend: backend, status: StatusStart}
}

// NewIssuerSession starts an issuer-side join against backend.
func NewIssuerSession(backend scheme.Backend) *Session {
	return &Session{ID: uuid.NewString(), role: RoleIssuer, backend: backend, status: StatusStart}
}

// Status reports the session's current position.
func (s *Session) Status() Status { return s.status }

func (s *Session) logger() log.Logger {
	return log.DefaultLogger().With("join_id", s.ID, "role", s.role.String())
}

// Start produces the member's first message: a freshly drawn secret, not
// yet bound to an issued credential. mk is populated in place.
func (s *Session) Start(env engine.RandSource, gk *engine.GroupKey, mk *engine.MemberKey) (*engine.JoinMsg, error) {
	if s.role != RoleMember {
		return nil, fmt.Errorf("join: Start called on an issuer session")
	}
	if s.status != StatusStart {
		return nil, fmt.Errorf("join: Start called out of order, session is %v", s.status)
	}
	out, err := s.backend.JoinMemberStep(env, gk, mk, 0, nil)
	if err != nil {
		s.logger().Warnw("join start failed", "err", err)
		return nil, err
	}
	s.status = StatusAwaitingCredential
	s.nextStep = 1
	s.logger().Debugw("join started", "step", 0)
	return out, nil
}

// Issue consumes the member's step-0 message and produces the issued
// credential, recording the new member in gml.
func (s *Session) Issue(isskey *engine.IssuerKey, gml *engine.GML, in *engine.JoinMsg) (*engine.JoinMsg, error) {
	if s.role != RoleIssuer {
		return nil, fmt.Errorf("join: Issue called on a member session")
	}
	if s.status != StatusStart || in.Step != 0 {
		return nil, fmt.Errorf("join: Issue called out of order, session is %v", s.status)
	}
	out, err := s.backend.JoinIssuerStep(isskey, gml, 0, in)
	if err != nil {
		s.logger().Warnw("issue failed", "err", err)
		return nil, err
	}
	s.status = StatusComplete
	s.logger().Debugw("credential issued")
	return out, nil
}

// Finish consumes the issuer's step-1 reply, verifying the issued
// credential against gk before accepting membership.
func (s *Session) Finish(env engine.RandSource, gk *engine.GroupKey, mk *engine.MemberKey, in *engine.JoinMsg) error {
	if s.role != RoleMember {
		return fmt.Errorf("join: Finish called on an issuer session")
	}
	if s.status != StatusAwaitingCredential || in.Step != s.nextStep {
		return fmt.Errorf("join: Finish called out of order, session is %v", s.status)
	}
	if _, err := s.backend.JoinMemberStep(env, gk, mk, 1, in); err != nil {
		s.logger().Warnw("join finish rejected issued credential", "err", err)
		return err
	}
	s.status = StatusComplete
	s.logger().Debugw("join complete")
	return nil
}
