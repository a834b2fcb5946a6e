package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager(Config{Secret: "test-secret", Issuer: "taxi-fleet-test", TTL: time.Hour})

	token, jti, err := m.Generate(42, "bob")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if token == "" || jti == "" {
		t.Fatalf("expected non-empty token and jti")
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.DriverID != 42 {
		t.Errorf("DriverID = %d, want 42", claims.DriverID)
	}
	if claims.Login != "bob" {
		t.Errorf("Login = %q, want %q", claims.Login, "bob")
	}
	if claims.ID != jti {
		t.Errorf("jti = %q, want %q", claims.ID, jti)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewManager(Config{Secret: "secret-a", Issuer: "taxi-fleet-test", TTL: time.Hour})
	verifier := NewManager(Config{Secret: "secret-b", Issuer: "taxi-fleet-test", TTL: time.Hour})

	token, _, err := issuer.Generate(1, "bob")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected verification failure for wrong secret")
	}
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager(Config{Secret: "test-secret", Issuer: "taxi-fleet-test", TTL: -time.Minute})

	token, _, err := m.Generate(1, "bob")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Fatal("expected verification failure for expired token")
	}
}

func TestVerifyWrongIssuer(t *testing.T) {
	issuer := NewManager(Config{Secret: "test-secret", Issuer: "someone-else", TTL: time.Hour})
	verifier := NewManager(Config{Secret: "test-secret", Issuer: "taxi-fleet-test", TTL: time.Hour})

	token, _, err := issuer.Generate(1, "bob")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected verification failure for wrong issuer")
	}
}
