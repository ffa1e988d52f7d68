package utils

import "golang.org/x/crypto/bcrypt"

// GenerateHash hasht ein Klartext-Passwort mit bcrypt (Default-Cost).
func GenerateHash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CompareHash prüft ein Klartext-Passwort gegen den gespeicherten Hash.
func CompareHash(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
