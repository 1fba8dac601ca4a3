package scope

import "gorm.io/gorm"

// Default orderings for collection reads. Specifications decide what rows
// qualify; scopes fix how a listing comes back when the caller does not ask
// for an explicit order.

// OrderByCreatedDesc lists newest first. Used for the talk overview.
func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// OrderByCreatedAsc lists oldest first, the reading order of a thread.
func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}
