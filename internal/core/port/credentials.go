package port

// CredentialStrategy isolates how passwords are stored and compared. The
// default strategy stores and compares the raw value, matching the documented
// endpoint contract; a hashing strategy can be substituted through
// configuration without touching the endpoints.
type CredentialStrategy interface {
	// Seal transforms a plaintext password into its stored form.
	Seal(password string) (string, error)
	// Match reports whether the plaintext password corresponds to the
	// stored form.
	Match(password, sealed string) (bool, error)
}
