package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a password with bcrypt, mixing in the configured
// pepper before hashing.
func HashPassword(password, pepper string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password+pepper), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a peppered password against its stored hash in
// constant time.
func CheckPassword(hash, password, pepper string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+pepper))
}
