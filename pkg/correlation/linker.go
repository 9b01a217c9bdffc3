package correlation

import (
	"strings"
	"sync/atomic"
	"time"
)

// Logger is the subset of the application logger the linker needs.
type Logger interface {
	Debug(module, message string, details map[string]interface{})
	Warn(module, message string, details map[string]interface{})
}

// Linker promotes fingerprint-keyed bindings to message-keyed ones once the
// matching assistant message becomes observable. Each staged response gets
// its own bounded retry loop; responses never interfere with each other.
type Linker struct {
	store      Store
	messages   MessageSource
	policy     RetryPolicy
	logger     Logger
	generation atomic.Uint64
}

func NewLinker(store Store, messages MessageSource, policy RetryPolicy, logger Logger) *Linker {
	return &Linker{
		store:    store,
		messages: messages,
		policy:   policy,
		logger:   logger,
	}
}

// Generation returns the current staging epoch. Bindings staged under an
// older generation are abandoned by in-flight retries after a reset.
func (l *Linker) Generation() uint64 {
	return l.generation.Load()
}

// Reset clears not-yet-linked staging state and bumps the generation so
// in-flight retry loops stop writing. Already-linked bindings survive.
func (l *Linker) Reset() {
	l.generation.Add(1)
	l.store.ClearPending()
}

// Link starts the retry loop for one staged response. It returns
// immediately; correlation failure is non-fatal and the binding stays
// addressable by fingerprint.
func (l *Linker) Link(sessionID, fingerprint, responseText string) {
	gen := l.generation.Load()
	go l.run(sessionID, fingerprint, responseText, gen)
}

func (l *Linker) run(sessionID, fingerprint, responseText string, gen uint64) {
	for attempt := 1; attempt <= l.policy.MaxAttempts; attempt++ {
		time.Sleep(l.policy.Delay(attempt))

		if l.generation.Load() != gen {
			// Conversation was reset while we waited.
			return
		}

		if id, ok := l.findMatch(sessionID, responseText); ok {
			if l.store.Promote(fingerprint, id) {
				l.logger.Debug("correlation", "citations linked to message", map[string]interface{}{
					"message_id": id,
					"attempt":    attempt,
				})
			}
			return
		}
	}

	l.logger.Warn("correlation", "link retries exhausted, binding stays fingerprint-keyed", map[string]interface{}{
		"fingerprint": fingerprint,
		"attempts":    l.policy.MaxAttempts,
	})
}

// findMatch scans observable messages for an assistant message whose body
// contains the staged response's probe prefix.
func (l *Linker) findMatch(sessionID, responseText string) (string, bool) {
	probe := MatchProbe(responseText)
	if probe == "" {
		return "", false
	}
	for _, m := range l.messages.Messages(sessionID) {
		if m.Role != "assistant" || m.Content == "" {
			continue
		}
		if strings.Contains(m.Content, probe) {
			return m.ID, true
		}
	}
	return "", false
}
