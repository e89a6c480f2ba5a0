package models

import (
	"testing"

	"github.com/castellodata/payroll_backend/utils"
)

func TestCredentialsMatch(t *testing.T) {
	hashed, err := utils.HashPassword("castello123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !credentialsMatch(string(hashed), "castello123") {
		t.Fatalf("valid hash and matching password should match")
	}
	if credentialsMatch(string(hashed), "wrong-password") {
		t.Fatalf("wrong password must not match")
	}
}

func TestCredentialsMatchMalformedHashFailsClosed(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$truncated"} {
		if credentialsMatch(hash, "castello123") {
			t.Fatalf("malformed stored hash %q must not authenticate", hash)
		}
	}
}
