package models

import (
	"testing"
	"time"
)

func TestDocumentStatusFromExpiry(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if got := documentStatusFromExpiry(nil, now); got != DocumentStatusMissing {
		t.Fatalf("nil expiry: got %s, want MISSING", got)
	}

	past := now.AddDate(0, 0, -1)
	if got := documentStatusFromExpiry(&past, now); got != DocumentStatusExpired {
		t.Fatalf("past expiry: got %s, want EXPIRED", got)
	}

	soon := now.AddDate(0, 0, 15)
	if got := documentStatusFromExpiry(&soon, now); got != DocumentStatusExpiringSoon {
		t.Fatalf("15 days out: got %s, want EXPIRING_SOON", got)
	}

	far := now.AddDate(0, 0, 45)
	if got := documentStatusFromExpiry(&far, now); got != DocumentStatusValid {
		t.Fatalf("45 days out: got %s, want VALID", got)
	}
}
