// Package ledger produces the simulated ledger tags stored on registry rows.
//
// A tag is an opaque audit digest, not a blockchain transaction: there is no
// linkage to prior tags, no signature, and no external verifiability. The
// tx_hash columns keep their original names for schema compatibility.
package ledger

import (
	"crypto/sha256"
	"encoding/hex"
)

// AuditTag returns the SHA-256 digest of the UTF-8 seed as 64 lowercase hex
// characters. Identical seeds yield identical tags; callers are responsible
// for mixing a time-varying component into the seed when issuing.
func AuditTag(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}
