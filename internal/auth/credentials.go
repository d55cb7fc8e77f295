package auth

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"merrymeal/internal/models"
)

var (
	// ErrInvalidCredentials is returned when the email/password pair
	// does not match a known account.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an email that already
	// has an account.
	ErrEmailTaken = errors.New("an account with this email already exists")
)

// CredentialStore verifies and creates user accounts. The console keeps
// accounts in memory only; a production deployment would back this with
// a real identity provider.
type CredentialStore interface {
	Verify(email, password string) (models.User, error)
	Create(user models.User, password string) error
}

type account struct {
	user models.User
	hash []byte
}

// MemoryCredentials is an in-process CredentialStore. Passwords are
// stored bcrypt-hashed.
type MemoryCredentials struct {
	mu       sync.RWMutex
	accounts map[string]account
}

// NewMemoryCredentials creates an empty in-memory credential store.
func NewMemoryCredentials() *MemoryCredentials {
	return &MemoryCredentials{accounts: make(map[string]account)}
}

// Create registers a new account. The email is case-insensitive.
func (s *MemoryCredentials) Create(user models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	key := strings.ToLower(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[key]; exists {
		return ErrEmailTaken
	}
	s.accounts[key] = account{user: user, hash: hash}
	return nil
}

// Verify checks the email/password pair and returns the account profile.
func (s *MemoryCredentials) Verify(email, password string) (models.User, error) {
	s.mu.RLock()
	acct, exists := s.accounts[strings.ToLower(email)]
	s.mu.RUnlock()

	if !exists {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.hash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return acct.user, nil
}
