// Package id generates transaction identifiers and placeholder references.
package id

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

const (
	// ImportPrefix marks transactions created by the import reader.
	ImportPrefix = "IMP"
	// ManualPrefix marks transactions entered by hand.
	ManualPrefix = "TX"
)

// New returns an opaque identifier like "IMP-1F3A9C02".
func New(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(raw[:8]))
}

// ImportReference returns the placeholder reference for an imported row
// without a reference column, e.g. "CSV-3".
func ImportReference(row int) string {
	return fmt.Sprintf("CSV-%d", row)
}

// ManualReference returns a placeholder reference like "REF-042".
func ManualReference() string {
	return fmt.Sprintf("REF-%03d", rand.Intn(1000))
}

// Prefix returns the part of an identifier before the first '-'.
// "IMP-1F3A9C02" -> "IMP"
func Prefix(id string) string {
	p, _, found := strings.Cut(id, "-")
	if !found {
		return ""
	}
	return p
}
