package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPassphrase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full date", "01012000", "01-01-2000"},
		{"already hyphenated", "01-01-2000", "01-01-2000"},
		{"non-digits stripped", "a0b1c0d1e2f0g0h0", "01-01-2000"},
		{"extra digits truncated", "010120001234", "01-01-2000"},
		{"empty", "", ""},
		{"one digit", "3", "3"},
		{"two digits", "31", "31"},
		{"three digits", "311", "31-1"},
		{"four digits", "3112", "31-12"},
		{"five digits", "31121", "31-12-1"},
		{"letters only", "abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPassphrase(tt.in))
		})
	}
}
