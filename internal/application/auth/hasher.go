package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// PasswordHasher compares a submitted secret against a stored one-way hash.
// Implementations must never fall back to plain equality.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type BcryptHasher struct{}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare returns bcrypt.ErrMismatchedHashAndPassword on a wrong password;
// any other error means the stored hash itself is unusable.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
