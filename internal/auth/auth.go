package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"

	"merrymeal/internal/models"
)

// ErrInvalidToken is returned for expired, malformed, or revoked
// session tokens.
var ErrInvalidToken = errors.New("invalid session token")

// Manager is the session gate: it verifies credentials against the
// injected store, issues session tokens, and validates them on every
// protected request. Logout revokes the token for its remaining
// lifetime.
type Manager struct {
	creds  CredentialStore
	secret []byte
	ttl    time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewManager creates a session manager backed by the given credential
// store.
func NewManager(creds CredentialStore, secret string, ttl time.Duration) *Manager {
	return &Manager{
		creds:   creds,
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: make(map[string]time.Time),
	}
}

// Login verifies the credential pair and, on success, returns the user
// profile and a signed session token. Failure leaves no session state
// behind.
func (m *Manager) Login(email, password string) (models.User, string, error) {
	user, err := m.creds.Verify(email, password)
	if err != nil {
		return models.User{}, "", err
	}

	expiresAt := time.Now().Add(m.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"exp":   expiresAt.Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return models.User{}, "", err
	}
	return user, signed, nil
}

// Register creates a new account in the credential store.
func (m *Manager) Register(user models.User, password string) error {
	return m.creds.Create(user, password)
}

// Logout revokes the session token. Revoking an unknown token is a
// no-op.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()
	m.revoked[token] = time.Now().Add(m.ttl)
}

// Verify validates a session token and returns the user profile it
// carries.
func (m *Manager) Verify(tokenString string) (models.User, error) {
	if tokenString == "" || m.isRevoked(tokenString) {
		return models.User{}, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return models.User{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if email == "" {
		return models.User{}, ErrInvalidToken
	}
	return models.User{Email: email, Name: name, Role: role}, nil
}

func (m *Manager) isRevoked(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()
	_, revoked := m.revoked[token]
	return revoked
}

// pruneLocked drops revocation entries whose tokens have expired on
// their own. Caller must hold mu.
func (m *Manager) pruneLocked() {
	now := time.Now()
	for token, until := range m.revoked {
		if now.After(until) {
			delete(m.revoked, token)
		}
	}
}
