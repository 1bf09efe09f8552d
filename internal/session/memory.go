package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	user         User
	passwordHash []byte
}

// Memory is an in-memory Authenticator used by the demo binary and tests
// in place of the real provider. Accounts live for the process lifetime.
type Memory struct {
	mu       sync.Mutex
	accounts map[string]*account // keyed by lowercased email
	current  *User
}

// NewMemory creates an empty in-memory authenticator.
func NewMemory() *Memory {
	return &Memory{accounts: make(map[string]*account)}
}

// CurrentUser returns the active session's user, or nil when anonymous.
func (m *Memory) CurrentUser() *User {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}

// Register creates an account and signs it in.
func (m *Memory) Register(name, email, password string) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" || password == "" {
		return Result{Message: "email and password are required"}
	}
	if _, exists := m.accounts[key]; exists {
		return Result{Message: "an account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Result{Message: "could not create account"}
	}

	acct := &account{
		user:         User{ID: uuid.New().String(), Name: name, Email: key},
		passwordHash: hash,
	}
	m.accounts[key] = acct
	m.current = &acct.user

	return Result{Success: true}
}

// Login signs in an existing account.
func (m *Memory) Login(email, password string) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(email))
	acct, ok := m.accounts[key]
	if !ok {
		return Result{Message: "invalid email or password"}
	}
	if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
		return Result{Message: "invalid email or password"}
	}

	m.current = &acct.user
	return Result{Success: true}
}

// SocialLogin signs in with a canned identity for the given provider.
func (m *Memory) SocialLogin(provider string) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch provider {
	case "google", "facebook":
	default:
		return Result{Message: "unknown provider: " + provider}
	}

	email := "shopper@" + provider + ".example"
	acct, ok := m.accounts[email]
	if !ok {
		acct = &account{
			user: User{ID: uuid.New().String(), Name: "Social Shopper", Email: email},
		}
		m.accounts[email] = acct
	}

	m.current = &acct.user
	return Result{Success: true}
}

// Logout ends the active session.
func (m *Memory) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}
