package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Tom Cruise", "t.cruise@gmail.com", "tCruise12?3")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Email != "t.cruise@gmail.com" {
		t.Errorf("Expected email %q, got %q", "t.cruise@gmail.com", user.Email)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Invalid inputs
	if _, err := NewUser("", "t.cruise@gmail.com", "tCruise12?3"); err != ErrUserNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrUserNameEmpty, err)
	}

	if _, err := NewUser("Tom", "", "tCruise12?3"); err != ErrUserEmailEmpty {
		t.Errorf("Expected error %v, got %v", ErrUserEmailEmpty, err)
	}

	if _, err := NewUser("Tom", "not-an-email", "tCruise12?3"); err != ErrUserEmailInvalid {
		t.Errorf("Expected error %v, got %v", ErrUserEmailInvalid, err)
	}

	if _, err := NewUser("Tom", "t.cruise@gmail.com", "short"); err != ErrPasswordTooShort {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}
}

func TestUserValidateHashedOnly(t *testing.T) {
	t.Parallel()

	user := User{
		ID:             uuid.New(),
		Name:           "Mark Black",
		Email:          "m.black@gmail.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}

	if err := user.Validate(); err != nil {
		t.Errorf("Expected no error for hash-only user, got %v", err)
	}

	user.HashedPassword = ""
	if err := user.Validate(); err != ErrPasswordEmpty {
		t.Errorf("Expected error %v, got %v", ErrPasswordEmpty, err)
	}
}

func TestValidEmailFormat(t *testing.T) {
	t.Parallel()

	valid := []string{"a@b.co", "user.name@example.com", "x@sub.domain.org"}
	for _, email := range valid {
		if !validEmailFormat(email) {
			t.Errorf("Expected %q to be valid", email)
		}
	}

	invalid := []string{"", "@b.co", "a@", "a@b", "a@.co", "a@b."}
	for _, email := range invalid {
		if validEmailFormat(email) {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}
