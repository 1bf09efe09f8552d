package session

import "log/slog"

// Gate wraps mutating actions behind an authentication check. It guards
// add-to-cart, wishlist-toggle and checkout-initiation; browsing, search
// and filtering stay open.
type Gate struct {
	auth   Authenticator
	prompt func()
	logger *slog.Logger
}

// NewGate creates a gate over the given authenticator. prompt is the
// show-authentication side effect fired when an anonymous user attempts a
// guarded action.
func NewGate(auth Authenticator, prompt func(), logger *slog.Logger) *Gate {
	return &Gate{auth: auth, prompt: prompt, logger: logger}
}

// Require runs action immediately when a session is active. Otherwise it
// fires the authentication prompt and never runs action.
func (g *Gate) Require(action func()) {
	if g.auth.CurrentUser() != nil {
		action()
		return
	}

	g.logger.Warn("action blocked, authentication required")
	if g.prompt != nil {
		g.prompt()
	}
}

// Authenticated reports whether a session is active.
func (g *Gate) Authenticated() bool {
	return g.auth.CurrentUser() != nil
}

// User returns the active session's user, or nil.
func (g *Gate) User() *User {
	return g.auth.CurrentUser()
}
