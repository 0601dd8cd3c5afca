package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// LegacyDigestLen is the length of a LegacyDigest output
const LegacyDigestLen = sha256.Size * 2

// LegacyDigest returns the lowercase hex SHA-256 of password. It is unsalted and
// only kept to verify digests stored before salted hashing was introduced.
func LegacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// IsLegacyDigest reports whether s has the shape of a LegacyDigest output
func IsLegacyDigest(s string) bool {
	if len(s) != LegacyDigestLen {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
