package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "secret", 15)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateAccessToken(token, "secret")
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q", claims.UserID)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "secret", 15)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateAccessToken(token, "other"); err == nil {
		t.Error("expected validation failure with wrong secret")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "secret", -1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateAccessToken(token, "secret"); err == nil {
		t.Error("expected validation failure for expired token")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := ValidateAccessToken("not-a-token", "secret"); err == nil {
		t.Error("expected validation failure for malformed token")
	}
}
