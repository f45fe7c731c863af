package password

import (
	"unicode"

	"github.com/alexedwards/argon2id"
	customErrors "github.com/yaskovbs/My-Second-Project/internal/domain/user/errors"
)

var argonParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Validate checks the plaintext against the strength policy: at least 8
// characters with at least one lowercase letter, one uppercase letter, one
// digit and one symbol. The returned ValidationError lists every rule the
// candidate missed.
func Validate(plain string) error {
	var details []string
	var hasLower, hasUpper, hasDigit, hasSymbol bool

	for _, r := range plain {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	if len(plain) < 8 {
		details = append(details, "password must be at least 8 characters long")
	}
	if !hasLower {
		details = append(details, "password must contain a lowercase letter")
	}
	if !hasUpper {
		details = append(details, "password must contain an uppercase letter")
	}
	if !hasDigit {
		details = append(details, "password must contain a digit")
	}
	if !hasSymbol {
		details = append(details, "password must contain a symbol")
	}

	if len(details) > 0 {
		return &customErrors.ValidationError{Details: details}
	}
	return nil
}

// Hash validates the plaintext against the strength policy and derives a
// salted argon2id digest from it. Hashing the same plaintext twice yields
// different digests because the salt is random per call.
func Hash(plain string) (string, error) {
	if err := Validate(plain); err != nil {
		return "", err
	}
	digest, err := argon2id.CreateHash(plain, argonParams)
	if err != nil {
		return "", customErrors.WrapInternal(err, "hash password")
	}
	return digest, nil
}

// Verify reports whether plain matches the stored digest. A mismatch is
// not an error; only a malformed digest is.
func Verify(plain, digest string) (bool, error) {
	ok, err := argon2id.ComparePasswordAndHash(plain, digest)
	if err != nil {
		return false, customErrors.WrapInternal(err, "verify password")
	}
	return ok, nil
}
