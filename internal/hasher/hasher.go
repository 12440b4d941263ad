// Package hasher computes content digests used to detect identical uploads.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the sha256 hex digest of data. An empty buffer hashes to the
// digest of zero bytes, which is a valid dedupe key, not an error.
func Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
