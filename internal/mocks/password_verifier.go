package mocks

import "strings"

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	// CompareFn allows test cases to mock the Compare behavior
	CompareFn func(hashedPassword, password string) error

	// Err is returned by default when CompareFn is nil
	Err error
}

// Compare implements the auth.PasswordVerifier interface. The default
// accepts hashes produced by MockUserStore ("mock-hash:" + plaintext).
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.Err != nil {
		return m.Err
	}
	if strings.TrimPrefix(hashedPassword, "mock-hash:") != password {
		return errPasswordMismatch
	}
	return nil
}

type passwordMismatchError struct{}

func (passwordMismatchError) Error() string { return "password mismatch" }

var errPasswordMismatch = passwordMismatchError{}
