package services

import (
	"crypto/subtle"
	"fmt"

	"community-board/config"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme decides how a password is stored and checked.
type PasswordScheme interface {
	Name() string
	Hash(password string) (string, error)
	Matches(stored, password string) bool
}

// PlaintextPasswords stores and compares passwords verbatim. It is the
// default and it is insecure; BcryptPasswords is the opt-in replacement.
type PlaintextPasswords struct{}

func (PlaintextPasswords) Name() string { return config.PasswordSchemePlaintext }

func (PlaintextPasswords) Hash(password string) (string, error) { return password, nil }

func (PlaintextPasswords) Matches(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

type BcryptPasswords struct {
	Cost int
}

func (BcryptPasswords) Name() string { return config.PasswordSchemeBcrypt }

func (b BcryptPasswords) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptPasswords) Matches(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NewPasswordScheme resolves the PASSWORD_SCHEME setting.
func NewPasswordScheme(name string) (PasswordScheme, error) {
	switch name {
	case "", config.PasswordSchemePlaintext:
		return PlaintextPasswords{}, nil
	case config.PasswordSchemeBcrypt:
		return BcryptPasswords{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}
