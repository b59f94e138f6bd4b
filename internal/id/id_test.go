package id

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	re := regexp.MustCompile(`^IMP-[0-9A-F]{8}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		got := New(ImportPrefix)
		assert.Regexp(t, re, got)
		assert.False(t, seen[got], "duplicate id %s", got)
		seen[got] = true
	}
}

func TestImportReference(t *testing.T) {
	assert.Equal(t, "CSV-1", ImportReference(1))
	assert.Equal(t, "CSV-42", ImportReference(42))
}

func TestManualReference(t *testing.T) {
	re := regexp.MustCompile(`^REF-\d{3}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, re, ManualReference())
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"IMP-1F3A9C02", "IMP"},
		{"TX-00000000", "TX"},
		{"T001", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Prefix(tt.id), "Prefix(%q)", tt.id)
	}
}
