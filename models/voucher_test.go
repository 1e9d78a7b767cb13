package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidVoucherAmount(t *testing.T) {
	for _, amount := range VoucherAmounts {
		assert.True(t, IsValidVoucherAmount(amount))
	}
	for _, amount := range []int64{0, 50, 150, 300, -100} {
		assert.False(t, IsValidVoucherAmount(amount))
	}
}

func TestGenerateVoucherCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := GenerateVoucherCode()
		assert.Len(t, code, 8)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(voucherCodeChars, r), "unexpected character %q", r)
		}
		seen[code] = struct{}{}
	}
	// Collisions across 100 draws from a 36^8 space would indicate a broken
	// generator.
	assert.Len(t, seen, 100)
}
