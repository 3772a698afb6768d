package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashIdentifier returns a SHA-256 hex digest of a contact identifier such as
// an email address, so leads can be correlated in logs without storing it.
// Case and surrounding whitespace do not change the digest.
func HashIdentifier(input string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(input))))
	return hex.EncodeToString(sum[:])
}

// ShortHash is the first 12 characters of HashIdentifier, enough to tell
// leads apart in log lines.
func ShortHash(input string) string {
	return HashIdentifier(input)[:12]
}
