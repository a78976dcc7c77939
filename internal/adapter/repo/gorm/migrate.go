package gormrepo

import "gorm.io/gorm"

// AutoMigrate creates or extends the three tables. Column drops are never
// attempted, so older snapshots survive upgrades and get back-filled by
// the domain instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&petStateRow{}, &inventoryRow{}, &domainEventRow{})
}
