package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ValidatePIN checks that the PIN is exactly four digits, the same rule the
// kitchen till keypad enforces.
func ValidatePIN(pin string) error {
	if len(pin) != 4 {
		return errors.New("PIN must be exactly 4 digits")
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return errors.New("PIN must be exactly 4 digits")
		}
	}
	return nil
}

// HashPIN hashes a PIN using bcrypt
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPINHash compares a PIN against its bcrypt hash
func CheckPINHash(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

// NormalizeMobile strips spaces and dashes from a mobile number, keeping a
// leading plus sign. Validation proper happens at the binding layer.
func NormalizeMobile(mobile string) string {
	out := make([]byte, 0, len(mobile))
	for i := 0; i < len(mobile); i++ {
		c := mobile[i]
		if c >= '0' && c <= '9' {
			out = append(out, c)
			continue
		}
		if c == '+' && len(out) == 0 {
			out = append(out, c)
		}
	}
	return string(out)
}
