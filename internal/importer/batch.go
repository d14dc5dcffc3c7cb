package importer

import (
	"go.uber.org/zap"
)

// Coordinator drives the reconciler over a set of input units. Each unit's
// writes run inside their own savepoint nested in one outer transaction, so
// a fatal failure partway through a unit discards only that unit's writes
// and leaves completed units intact.
type Coordinator struct {
	store Store
	rec   *Reconciler
	log   *zap.Logger
}

func NewCoordinator(s Store, log *zap.Logger) *Coordinator {
	return &Coordinator{
		store: s,
		rec:   NewReconciler(log),
		log:   log,
	}
}

// Run processes all units in order and returns the aggregate report. The
// report is the only failure channel: header failures, skipped rows and
// store errors all land in it rather than escaping as an error.
func (c *Coordinator) Run(units []*Unit) *Report {
	report := &Report{}
	err := c.store.InBatch(func(outer Store) error {
		for _, unit := range units {
			report.merge(c.runUnit(outer, unit))
		}
		return nil
	})
	if err != nil {
		// The outer commit itself failed; everything was rolled back.
		c.log.Error("import batch transaction failed", zap.Error(err))
		for i := range report.Units {
			if report.Units[i].State == StateCommitted {
				report.Units[i].State = StateRolledBack
				report.Units[i].Issues = append(report.Units[i].Issues, err.Error())
			}
		}
	}
	return report
}

func (c *Coordinator) runUnit(outer Store, unit *Unit) UnitReport {
	ur := UnitReport{Unit: unit.Name, State: StateHeaderResolve}

	mapping, err := ResolveHeaders(unit.Headers)
	if err != nil {
		c.log.Warn("unit header resolution failed",
			zap.String("unit", unit.Name), zap.Error(err))
		ur.State = StateHeaderFailed
		ur.Issues = append(ur.Issues, err.Error())
		return ur
	}

	ur.State = StateRowsProcessing
	txErr := outer.InUnit(func(us Store) error {
		for i, row := range unit.Rows {
			// Header row is line 1 of the source file.
			rec := Record{
				Line:     i + 2,
				Name:     mapping.Value(row, FieldName),
				CardID:   mapping.Value(row, FieldCardID),
				Rare:     mapping.Value(row, FieldRare),
				Stock:    mapping.Value(row, FieldStock),
				Category: mapping.Value(row, FieldCategory),
			}
			ur.RowsProcessed++
			result, fatal := c.rec.Apply(us, rec, unit.CategoryFallback)
			if fatal != nil {
				return fatal
			}
			ur.count(result.Outcome)
			if result.Issue != "" {
				ur.Issues = append(ur.Issues, result.Issue)
			}
		}
		return nil
	})
	if txErr != nil {
		ur.State = StateRolledBack
		ur.Issues = append(ur.Issues, txErr.Error())
		// The savepoint rollback discarded this unit's writes; re-count them
		// as errors so the report matches what actually persisted.
		ur.Errors += ur.Added + ur.Updated
		ur.Added = 0
		ur.Updated = 0
		return ur
	}

	ur.State = StateCommitted
	c.log.Info("unit committed",
		zap.String("unit", unit.Name),
		zap.Int("rows", ur.RowsProcessed),
		zap.Int("added", ur.Added),
		zap.Int("updated", ur.Updated),
		zap.Int("unchanged", ur.Unchanged),
		zap.Int("skipped", ur.Skipped),
		zap.Int("errors", ur.Errors))
	return ur
}
