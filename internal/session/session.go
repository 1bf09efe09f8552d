// Package session carries the authenticated-user state and the gate that
// guards mutating storefront actions behind it. The authentication provider
// itself is an external collaborator; the core only reads session presence
// and forwards explicit login/register/logout intents.
package session

// User is the authenticated-user record. Absence (nil) means anonymous.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Result reports the outcome of an authentication attempt. Failures carry
// a message for the auth form; retry is simply re-submission.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Authenticator is the external authentication boundary.
type Authenticator interface {
	// CurrentUser returns the active session's user, or nil when anonymous.
	CurrentUser() *User

	Login(email, password string) Result
	Register(name, email, password string) Result
	SocialLogin(provider string) Result
	Logout()
}
