package utils

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// orderNumberLockClass namespaces the advisory lock used for order numbering
// so it cannot collide with other advisory locks on the same database.
const orderNumberLockClass int64 = 0x564C52 // "VLR"

// NextOrderNumber allocates the next VLR-<year>-NNNNNN order number. Must run
// inside the checkout transaction: the per-year advisory lock is held until
// that transaction commits, so two concurrent checkouts cannot read the same
// sequence value. The sequence continues from the highest number ever issued
// for the year, so a deleted order never frees its number for reuse.
func NextOrderNumber(tx *gorm.DB, now time.Time) (string, error) {
	year := now.UTC().Year()

	if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", OrderNumberLockKey(year)).Error; err != nil {
		return "", err
	}

	var maxSeq int64
	if err := tx.Table("orders").
		Where("order_number LIKE ?", fmt.Sprintf("VLR-%d-%%", year)).
		Select("COALESCE(MAX(SPLIT_PART(order_number, '-', 3)::bigint), 0)").
		Scan(&maxSeq).Error; err != nil {
		return "", err
	}

	return FormatOrderNumber(year, maxSeq+1), nil
}

// OrderNumberLockKey maps a year onto the advisory-lock keyspace: namespace
// in the high bits, year in the low bits.
func OrderNumberLockKey(year int) int64 {
	return orderNumberLockClass<<32 | int64(year)
}

// FormatOrderNumber renders an order number like VLR-2025-000042.
func FormatOrderNumber(year int, seq int64) string {
	return fmt.Sprintf("VLR-%d-%06d", year, seq)
}
