// Package hash implements the password digest used by registration and login.
//
// The digest is a fixed unsalted SHA-1 hex string. That is deliberately weak
// but part of the documented storage contract: login matches records by
// (email, digest), so the function must stay deterministic.
package hash

import (
	"crypto/sha1"
	"encoding/hex"
)

func SHA1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
