package auth

import (
	"crypto/rand"
	"encoding/hex"

	"clilogin/internal/config"
)

// sessionIDBytes is the entropy of a session identifier. Four random bytes
// render as eight lowercase hex characters.
const sessionIDBytes = 4

// Session correlates one login attempt with its callback. The ID is compared
// exactly once, when the callback arrives, and the session is discarded after
// the attempt resolves.
type Session struct {
	ID  string
	Env config.Environment
}

// NewSession creates a session for a single login attempt.
func NewSession(env config.Environment) Session {
	return Session{ID: NewSessionID(), Env: env}
}

// NewSessionID returns an 8-character lowercase hex string derived from
// cryptographically random bytes. The identifier must be unguessable so that
// an attacker cannot forge a matching state parameter.
func NewSessionID() string {
	b := make([]byte, sessionIDBytes)
	rand.Read(b)
	return hex.EncodeToString(b)
}
