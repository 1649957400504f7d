// Package id generates canonical record identifiers.
//
// Stored rows carry UUIDv4 strings in their uuid columns, so identifiers use
// the canonical 36-character lowercase form rather than a compact encoding.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUUID generates a canonical lowercase UUIDv4 string.
func NewUUID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return value.String(), nil
}
