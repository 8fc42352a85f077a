package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// demoUsers is the fixed login table. It is a compatibility shim, not a
// user store.
var demoUsers = map[string]string{
	"kirubha": "12345",
	"admin":   "admin123",
}

// Credentials checks logins against a fixed username -> password table.
type Credentials struct {
	hashes map[string][]byte
}

// NewCredentials hashes the built-in table.
func NewCredentials() (*Credentials, error) {
	return NewCredentialsFrom(demoUsers)
}

func NewCredentialsFrom(users map[string]string) (*Credentials, error) {
	c := &Credentials{hashes: make(map[string][]byte, len(users))}
	for u, p := range users {
		h, err := HashPassword(p)
		if err != nil {
			return nil, err
		}
		c.hashes[u] = []byte(h)
	}
	return c, nil
}

// Verify reports whether password belongs to username.
func (c *Credentials) Verify(username, password string) bool {
	h, ok := c.hashes[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(h, []byte(password)) == nil
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
