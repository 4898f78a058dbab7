package service

// SessionState is the coarse lifecycle of the console session.
type SessionState int

const (
	// SessionUnknown is the initial state before the stored token has
	// been inspected.
	SessionUnknown SessionState = iota
	// SessionAnonymous means no usable token is held.
	SessionAnonymous
	// SessionAuthenticated means a token with unexpired claims is held.
	SessionAuthenticated
)

// Session is a snapshot of the console session.
type Session struct {
	State  SessionState
	Token  string
	Claims *Claims
}

// SessionStore is the single owned holder of the console session. All
// consumers get it injected; nothing reads ambient cookie state directly.
type SessionStore interface {
	// Read returns the current session, demoting it to anonymous first
	// if the held token has expired.
	Read() Session
	// Update replaces the held token, decoding its claims. An invalid
	// token leaves the store anonymous.
	Update(token string) Session
	// Clear drops the session back to anonymous.
	Clear()
	// Subscribe returns a channel receiving each subsequent session
	// change and a cancel function releasing the subscription.
	Subscribe() (<-chan Session, func())
	// Token returns the held bearer token, or "" when anonymous.
	Token() string
}
