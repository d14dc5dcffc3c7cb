// Package auth verifies staff credentials against a flat JSON file mapping
// username to bcrypt password hash.
package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// UserFile is a credential store loaded once at startup.
type UserFile struct {
	hashes map[string]string
}

// LoadUserFile reads the users.json credential file.
func LoadUserFile(path string) (*UserFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read user file %q: %w", path, err)
	}
	var hashes map[string]string
	if err := json.Unmarshal(data, &hashes); err != nil {
		return nil, fmt.Errorf("parse user file %q: %w", path, err)
	}
	return &UserFile{hashes: hashes}, nil
}

// Check reports whether the username/password pair matches a stored hash.
func (u *UserFile) Check(username, password string) bool {
	hash, ok := u.hashes[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPassword produces a bcrypt hash suitable for the user file.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
