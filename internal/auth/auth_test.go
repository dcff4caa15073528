package auth

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword("hunter22", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("hunter23", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"

	token, err := GenerateToken(secret, "centre-1", "kitchen@example.org", KindCentre)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	donorToken, err := GenerateToken(secret, "donor-1", "donor@example.org", KindDonor)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if donorToken == token {
		t.Fatal("tokens for different subjects must differ")
	}
}
