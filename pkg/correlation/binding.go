package correlation

import (
	"time"

	"ventures-chat-be/pkg/citations"
)

// Binding associates one response's consolidated citation groups with the
// chat message that produced them. Until the rendering layer assigns the
// message its durable id, the binding is only addressable by fingerprint.
type Binding struct {
	Fingerprint  string
	ResponseText string
	Groups       []citations.ConsolidatedGroup
	MessageID    string
	Linked       bool
	Generation   uint64
	StagedAt     time.Time
}

// Store is the single-writer staging area for bindings. Implementations
// must keep the fingerprint entry addressable after promotion so repeated
// lookups re-derive the same result.
type Store interface {
	// Stage records a binding under its fingerprint key.
	Stage(b *Binding)

	// Promote re-keys the binding under messageID. The fingerprint entry is
	// retained as a fallback. Promoting an unknown fingerprint is a no-op
	// and returns false.
	Promote(fingerprint, messageID string) bool

	// Lookup resolves the groups for a message: by id first, then by the
	// content fingerprint, then by a linear scan comparing stored response
	// prefixes. A miss returns nil.
	Lookup(messageID, messageContent string) []citations.ConsolidatedGroup

	// Get returns the binding staged under the given key, if any.
	Get(key string) (*Binding, bool)

	// ClearPending drops every binding that was never linked. Linked
	// bindings for prior messages are untouched.
	ClearPending()
}

// Message is one observable chat message, as exposed by the rendering side.
type Message struct {
	ID      string
	Role    string
	Content string
}

// MessageSource lets the linker see the currently known messages.
type MessageSource interface {
	Messages(sessionID string) []Message
}
