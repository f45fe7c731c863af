package errors

import (
	"fmt"
	"testing"
)

func TestPredicates(t *testing.T) {
	cases := []struct {
		err  error
		pred func(error) bool
	}{
		{NewInvalidArgument("x"), IsInvalidArgument},
		{WrapInternal(fmt.Errorf("boom"), "ctx"), IsInternal},
		{ErrNotFound, IsNotFound},
		{ErrInvalidCredentials, IsInvalidCredentials},
		{ErrAlreadyExists, IsAlreadyExists},
		{ErrInvalidToken, IsInvalidToken},
		{ErrInvalidPassword, IsInvalidPassword},
		{ErrRateLimited, IsRateLimited},
	}
	for _, c := range cases {
		if !c.pred(c.err) {
			t.Fatalf("predicate failed for %v", c.err)
		}
	}
	if IsNotFound(ErrAlreadyExists) {
		t.Fatal("predicates must not cross-match")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidation("username is required", "email must be a valid email address")

	if !IsInvalidArgument(err) {
		t.Fatal("ValidationError must unwrap to ErrInvalidArgument")
	}

	ve, ok := AsValidation(err)
	if !ok {
		t.Fatal("AsValidation failed")
	}
	if len(ve.Details) != 2 {
		t.Fatalf("want 2 details, got %d", len(ve.Details))
	}

	wrapped := fmt.Errorf("register: %w", err)
	if _, ok := AsValidation(wrapped); !ok {
		t.Fatal("AsValidation must see through wrapping")
	}
}
