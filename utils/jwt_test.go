package utils

import (
	"testing"
	"time"

	"github.com/pros100kyiv/HUBbase-sub001/config"
)

func TestTokenRoundTripWithConfiguredSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	defer func() { config.AppConfig.JWTSecret = "" }()

	token, err := GenerateToken("staff-1", "owner@salon.test", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	id, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if id != "staff-1" {
		t.Fatalf("expected subject staff-1, got %q", id)
	}

	// A token signed under one secret must not validate under another.
	config.AppConfig.JWTSecret = "different-secret"
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token validated against the wrong secret")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	defer func() { config.AppConfig.JWTSecret = "" }()

	token, err := GenerateToken("staff-1", "owner@salon.test", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
