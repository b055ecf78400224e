package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// BcryptVerifier accepts any email whose password matches a shared hash.
// It implements session.Verifier for strict credential mode.
type BcryptVerifier struct {
	hash string
}

func NewBcryptVerifier(hash string) *BcryptVerifier {
	return &BcryptVerifier{hash: hash}
}

func (v *BcryptVerifier) Verify(_ string, password string) bool {
	return ComparePassword(v.hash, password) == nil
}
