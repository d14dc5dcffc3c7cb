package importer

import (
	"github.com/crosayo/cardstock/internal/model"
)

// Store is the catalog surface the reconciliation pipeline consumes. The
// three scope methods mirror the transaction nesting the coordinator relies
// on: one batch transaction, one savepoint per unit, one savepoint per row
// write.
type Store interface {
	// FindByNaturalKey looks an entry up by (card_id, rarity). A nil item
	// with a nil error means no match.
	FindByNaturalKey(cardID, rare string) (*model.Item, error)
	// Insert creates a new catalog entry.
	Insert(item *model.Item) error
	// UpdateInfo rewrites name and category of an existing entry, leaving
	// rarity, card_id and stock untouched.
	UpdateInfo(id uint, name, category string) error

	// InBatch runs fn inside the outer transaction covering a whole batch.
	InBatch(fn func(Store) error) error
	// InUnit runs fn inside a savepoint isolating one input unit; an error
	// from fn discards only that unit's writes.
	InUnit(fn func(Store) error) error
	// InRow runs fn inside a savepoint isolating one row's write.
	InRow(fn func(Store) error) error

	// Probe reports whether the store is still usable, distinguishing a
	// row-scoped failure from a dead connection.
	Probe() error
}
