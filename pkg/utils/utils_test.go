package utils

import (
	"testing"
	"time"
)

func TestJWT(t *testing.T) {
	secret := "supersecret"
	memberID := "m1"

	token, err := GenerateToken(memberID, secret, time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if claims.MemberID != memberID {
		t.Errorf("Expected MemberID %s, got %s", memberID, claims.MemberID)
	}

	_, err = ValidateToken(token, "wrongsecret")
	if err == nil {
		t.Errorf("Expected error with wrong secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	secret := "supersecret"

	token, err := GenerateToken("m1", secret, -time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ValidateToken(token, secret); err == nil {
		t.Errorf("Expected error for expired token")
	}
}
