package jwt

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "production", "secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateAndGetClaims(token, "secret")
	if err != nil {
		t.Fatalf("ValidateAndGetClaims: %v", err)
	}
	if id, ok := claims["id"].(float64); !ok || uint(id) != 42 {
		t.Errorf("expected id claim 42, got %v", claims["id"])
	}
	if claims["role"] != "production" {
		t.Errorf("expected role claim production, got %v", claims["role"])
	}
}

func TestValidateWithWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "user", "secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateAndGetClaims(token, "other-secret"); err == nil {
		t.Fatal("expected validation with the wrong secret to fail")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	if _, err := ValidateAndGetClaims("not-a-token", "secret"); err == nil {
		t.Fatal("expected validation of garbage to fail")
	}
}
