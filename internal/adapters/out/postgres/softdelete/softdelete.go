// Package softdelete centralizes the soft-delete read filter shared by the
// Postgres repositories. Orders and order items are never physically removed
// by business operations; they carry a deleted flag instead, and every read
// must exclude flagged rows. Keeping the predicate in one place stops each
// repository method from restating it.
package softdelete

import "gorm.io/gorm"

// Excluded is a GORM scope that filters out soft-deleted rows.
//
// Usage:
//
//	db.Scopes(softdelete.Excluded).Find(&dtos, "order_id = ?", orderID)
func Excluded(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", false)
}
