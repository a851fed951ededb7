// Package message implements the scope+message JSON envelope that
// link-capable schemes sign over: a message carries an application payload
// plus, when the selected scheme supports linkability, the scope the
// resulting pseudonym is bound to.
package message

import (
	"encoding/json"
	"fmt"
)

// Format distinguishes an opaque payload from a scoped envelope.
type Format int

const (
	// FormatRaw is an opaque byte payload, used by every non-linkable
	// scheme.
	FormatRaw Format = iota
	// FormatScoped is the {"scope":...,"message":...} JSON envelope
	// link-capable schemes sign over.
	FormatScoped
)

// Message is the unit of data passed to Sign/Verify and friends.
type Message struct {
	Format  Format
	Scope   []byte
	Payload []byte
}

// Raw wraps an opaque payload.
func Raw(payload []byte) Message {
	return Message{Format: FormatRaw, Payload: payload}
}

// Scoped wraps a payload bound to scope, for link-capable schemes.
func Scoped(scope, payload []byte) Message {
	return Message{Format: FormatScoped, Scope: scope, Payload: payload}
}

type envelope struct {
	Scope   string `json:"scope"`
	Message string `json:"message"`
}

// Bytes returns the canonical byte encoding signed over: the raw payload
// for FormatRaw, or the JSON envelope for FormatScoped.
func (m Message) Bytes() ([]byte, error) {
	switch m.Format {
	case FormatRaw:
		return m.Payload, nil
	case FormatScoped:
		return json.Marshal(envelope{Scope: string(m.Scope), Message: string(m.Payload)})
	default:
		return nil, fmt.Errorf("message: unknown format %d", m.Format)
	}
}

// ParseScoped parses a FormatScoped envelope's JSON bytes back into scope
// and payload.
func ParseScoped(data []byte) (scope, payload []byte, err error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil, fmt.Errorf("message: invalid scoped envelope: %w", err)
	}
	return []byte(env.Scope), []byte(env.Message), nil
}
