package importer

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/crosayo/cardstock/internal/model"
	"github.com/crosayo/cardstock/internal/normalize"
	"github.com/crosayo/cardstock/internal/rarity"
)

// Record is one input row already mapped to canonical fields.
type Record struct {
	Line     int
	Name     string
	CardID   string
	Rare     string
	Stock    string
	Category string
}

// RowResult is the reconciler's verdict on one record.
type RowResult struct {
	Outcome Outcome
	Issue   string
}

// Reconciler applies one record against the catalog, deciding
// insert/update/no-op by natural key (card_id, rarity).
type Reconciler struct {
	log *zap.Logger
}

func NewReconciler(log *zap.Logger) *Reconciler {
	return &Reconciler{log: log}
}

// Apply runs the reconciliation decision procedure for one record inside the
// given unit scope. Row-scoped failures are folded into the returned
// RowResult; a non-nil error means the store itself became unusable and the
// whole unit must be rolled back.
func (r *Reconciler) Apply(s Store, rec Record, fallbackCategory string) (RowResult, error) {
	if rec.Name == "" || rec.Rare == "" {
		verr := &RowValidationError{Line: rec.Line, Reason: "name or rarity is empty"}
		r.log.Warn("skipping row", zap.Int("line", rec.Line), zap.String("reason", verr.Reason))
		return RowResult{Outcome: OutcomeSkipped, Issue: verr.Error()}, nil
	}

	stock := r.parseStock(rec)

	rare := rarity.Canonicalize(rec.Rare)
	if !rarity.IsDefined(rare) {
		r.log.Info("rarity outside defined vocabulary, keeping as-is",
			zap.Int("line", rec.Line),
			zap.String("raw", rec.Rare),
			zap.String("canonical", rare))
	}

	category := rec.Category
	if category == "" {
		category = fallbackCategory
	}

	// No card_id means no natural key: the row cannot be deduplicated and is
	// always inserted as a new entry.
	if rec.CardID == "" {
		return r.write(s, rec, OutcomeAdded, func(rs Store) error {
			return rs.Insert(&model.Item{
				Name:     rec.Name,
				Rare:     rare,
				Stock:    stock,
				Category: category,
			})
		})
	}

	existing, err := s.FindByNaturalKey(rec.CardID, rare)
	if err != nil {
		return r.rowError(s, rec, err)
	}

	if existing == nil {
		cardID := rec.CardID
		return r.write(s, rec, OutcomeAdded, func(rs Store) error {
			return rs.Insert(&model.Item{
				Name:     rec.Name,
				CardID:   &cardID,
				Rare:     rare,
				Stock:    stock,
				Category: category,
			})
		})
	}

	if normalize.Equal(existing.Name, rec.Name) && normalize.Equal(existing.Category, category) {
		return RowResult{Outcome: OutcomeUnchanged}, nil
	}

	// Name or category drifted: correct them. Stock is deliberately left
	// alone so a re-import never overwrites hand-adjusted counts.
	id := existing.ID
	return r.write(s, rec, OutcomeUpdated, func(rs Store) error {
		return rs.UpdateInfo(id, rec.Name, category)
	})
}

// write runs one row's store mutation inside its own savepoint so a
// constraint violation rolls back only this row's write.
func (r *Reconciler) write(s Store, rec Record, outcome Outcome, fn func(Store) error) (RowResult, error) {
	if err := s.InRow(fn); err != nil {
		return r.rowError(s, rec, err)
	}
	return RowResult{Outcome: outcome}, nil
}

// rowError classifies a store failure. If the unit scope still answers a
// probe the failure is row-scoped; otherwise the connection is gone and the
// unit must abort.
func (r *Reconciler) rowError(s Store, rec Record, err error) (RowResult, error) {
	if probe := s.Probe(); probe != nil {
		r.log.Error("store unusable mid-unit, aborting unit",
			zap.Int("line", rec.Line), zap.Error(err))
		return RowResult{}, &PersistenceError{Scope: ScopeUnit, Err: err}
	}
	perr := &PersistenceError{Scope: ScopeRow, Err: err}
	r.log.Warn("row write failed", zap.Int("line", rec.Line), zap.Error(err))
	return RowResult{
		Outcome: OutcomeError,
		Issue:   fmt.Sprintf("row %d: %v", rec.Line, perr),
	}, nil
}

// parseStock reads the stock field as a non-negative integer, defaulting to
// zero on anything unparsable. Never a hard failure.
func (r *Reconciler) parseStock(rec Record) int {
	if rec.Stock == "" {
		return 0
	}
	n, err := strconv.Atoi(rec.Stock)
	if err != nil || n < 0 {
		r.log.Warn("invalid stock value, defaulting to 0",
			zap.Int("line", rec.Line), zap.String("stock", rec.Stock))
		return 0
	}
	return n
}
