package model

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// Identifiers are 24 lowercase hex characters (12 random bytes), assigned
// at creation and immutable. Requests carrying any other shape are rejected
// before storage is touched.

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewID generates a fresh body identifier.
func NewID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// IsValidID reports whether s conforms to the identifier format.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}
