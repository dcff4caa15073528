package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type AccountKind string

const (
	KindCentre AccountKind = "centre"
	KindDonor  AccountKind = "donor"
)

type JWTCustomClaims struct {
	SubjectID string      `json:"subject_id"`
	Email     string      `json:"email"`
	Kind      AccountKind `json:"kind"`
	jwt.RegisteredClaims
}

func GenerateToken(secret, subjectID, email string, kind AccountKind) (string, error) {
	claims := &JWTCustomClaims{
		SubjectID: subjectID,
		Email:     email,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
