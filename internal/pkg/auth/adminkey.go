package auth

import "golang.org/x/crypto/bcrypt"

// HashAdminKey produces a bcrypt hash suitable for storing in configuration.
func HashAdminKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckAdminKey compares a presented admin key against the configured bcrypt
// hash.
func CheckAdminKey(key, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
