package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestProcessValidationErrors(t *testing.T) {
	type form struct {
		Email string `validate:"required"`
		Name  string `validate:"required"`
	}

	err := validator.New().Struct(form{})
	if err == nil {
		t.Fatalf("expected validation to fail")
	}

	fields := ProcessValidationErrors(err)
	if len(fields) != 2 {
		t.Fatalf("fields = %v, want 2 entries", fields)
	}
	if fields["Email"] != "required" || fields["Name"] != "required" {
		t.Fatalf("fields = %v, want required tags for Email and Name", fields)
	}
}

func TestProcessValidationErrorsNonValidationError(t *testing.T) {
	if fields := ProcessValidationErrors(errors.New("unexpected EOF")); fields != nil {
		t.Fatalf("fields = %v, want nil for a non-validation error", fields)
	}
}
