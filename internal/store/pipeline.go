package store

import (
	"gorm.io/gorm"

	"github.com/crosayo/cardstock/internal/importer"
)

// The importer pipeline talks to the catalog through importer.Store. GORM
// maps the nested Transaction calls to SAVEPOINT/RELEASE on Postgres, which
// gives the batch/unit/row isolation the coordinator expects.

var _ importer.Store = (*Catalog)(nil)

// InBatch opens the outer transaction covering one whole import batch.
func (c *Catalog) InBatch(fn func(importer.Store) error) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// InUnit opens a savepoint scoping one input unit's writes.
func (c *Catalog) InUnit(fn func(importer.Store) error) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// InRow opens a savepoint scoping a single row's write.
func (c *Catalog) InRow(fn func(importer.Store) error) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Probe checks the connection still answers after a failed write.
func (c *Catalog) Probe() error {
	return c.db.Exec("SELECT 1").Error
}
