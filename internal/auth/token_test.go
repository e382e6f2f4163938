package auth

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateTokenHasThreeSegmentsEmptySignature(t *testing.T) {
	token, err := GenerateToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("token üretilemedi: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("üç segment bekleniyordu: %q", token)
	}
	if parts[2] != "" {
		t.Errorf("imza segmenti boş olmalı: %q", parts[2])
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	username, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("geçerli token reddedildi: %v", err)
	}
	if username != "admin" {
		t.Errorf("subject korunmalı: %q", username)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("admin", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("süresi dolmuş token geçersiz sayılmalı")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "abc", "a.b", "a.b.c", "..."} {
		if _, err := ValidateToken(tok); err == nil {
			t.Errorf("%q geçersiz sayılmalıydı", tok)
		}
	}
}
