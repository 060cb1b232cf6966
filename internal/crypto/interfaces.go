package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher produces and verifies password digests. Only the digest is
// ever persisted; the plaintext password never leaves the request scope.
type PasswordHasher interface {
	// Hash derives a storable digest from the plaintext password.
	Hash(password string) (string, error)

	// Compare checks the plaintext password against the stored digest.
	// An empty digest always fails: accounts created via Google sign-in
	// have no local password and must not be logged into with one.
	Compare(digest, password string) error
}

// OTPGenerator produces one-time codes for the password-reset flow.
type OTPGenerator interface {
	// Generate returns a fresh code of otpLength decimal digits drawn
	// from the OS CSPRNG.
	Generate() (string, error)
}
