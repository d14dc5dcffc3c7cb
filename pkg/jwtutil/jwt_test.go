package jwtutil

import (
	"testing"

	"github.com/crosayo/cardstock/pkg/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-key", ExpirationHours: 1})

	token, err := GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("username = %q, want alice", claims.Username)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-key", ExpirationHours: 1})
	token, err := GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Error("tampered token validated")
	}
	if _, err := ValidateToken("not a token"); err == nil {
		t.Error("garbage token validated")
	}

	// a token signed under a different key must not validate
	Initialize(&config.JWTConfig{SigningKey: "other-key", ExpirationHours: 1})
	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with old key validated")
	}
}
