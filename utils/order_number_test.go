package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "VLR-2026-000001", FormatOrderNumber(2026, 1))
	assert.Equal(t, "VLR-2026-000042", FormatOrderNumber(2026, 42))
	assert.Equal(t, "VLR-2025-123456", FormatOrderNumber(2025, 123456))
	// The counter can outgrow six digits without truncating.
	assert.Equal(t, "VLR-2026-1000000", FormatOrderNumber(2026, 1000000))
}

func TestOrderNumberLockKey(t *testing.T) {
	// One lock per year: same year always maps to the same key, different
	// years never collide, so concurrent checkouts in the same year serialize
	// while other years proceed.
	assert.Equal(t, OrderNumberLockKey(2026), OrderNumberLockKey(2026))
	assert.NotEqual(t, OrderNumberLockKey(2025), OrderNumberLockKey(2026))

	// Year in the low bits, namespace in the high bits.
	assert.Equal(t, int64(2026), OrderNumberLockKey(2026)&0xFFFFFFFF)
	assert.Equal(t, OrderNumberLockKey(2025)>>32, OrderNumberLockKey(2026)>>32)
	assert.NotZero(t, OrderNumberLockKey(2026)>>32)
}
