package auth

import "golang.org/x/crypto/bcrypt"

// Single credential component for the whole backend. Centre and donor
// registration/login must go through these two functions; the bcrypt cost is
// configured here and nowhere else.

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
