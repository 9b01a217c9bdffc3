package specification

import "gorm.io/gorm"

// Specification narrows a query. Implementations are composable; repositories
// apply them in order.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
