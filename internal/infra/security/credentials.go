package security

import (
	"fmt"

	"github.com/JeffreyEssien/cms/internal/core/port"
)

const (
	// SchemePlaintext stores and compares the raw password. This is the
	// documented endpoint contract and the default.
	SchemePlaintext = "plaintext"
	// SchemeArgon2 stores an Argon2id hash instead.
	SchemeArgon2 = "argon2id"
)

// PlaintextCredentials reproduces the stored-as-given contract: Seal is the
// identity and Match is string equality.
type PlaintextCredentials struct{}

func (PlaintextCredentials) Seal(password string) (string, error) {
	return password, nil
}

func (PlaintextCredentials) Match(password, sealed string) (bool, error) {
	return password == sealed, nil
}

// Argon2Credentials seals passwords as salted Argon2id hashes.
type Argon2Credentials struct{}

func (Argon2Credentials) Seal(password string) (string, error) {
	return HashPassword(password)
}

func (Argon2Credentials) Match(password, sealed string) (bool, error) {
	return VerifyPassword(password, sealed)
}

// StrategyFor resolves the configured password scheme to a strategy.
func StrategyFor(scheme string) (port.CredentialStrategy, error) {
	switch scheme {
	case "", SchemePlaintext:
		return PlaintextCredentials{}, nil
	case SchemeArgon2, "argon2":
		return Argon2Credentials{}, nil
	}
	return nil, fmt.Errorf("unknown password scheme %q", scheme)
}

var (
	_ port.CredentialStrategy = PlaintextCredentials{}
	_ port.CredentialStrategy = Argon2Credentials{}
)
