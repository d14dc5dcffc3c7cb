package importer

// Outcome classifies what the reconciler did with one row.
type Outcome string

const (
	OutcomeAdded     Outcome = "added"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeError     Outcome = "error"
)

// UnitState tracks a unit through the coordinator's state machine.
// pending -> header_resolving -> (header_failed | rows_processing)
// -> (rolled_back | committed).
type UnitState string

const (
	StatePending        UnitState = "pending"
	StateHeaderResolve  UnitState = "header_resolving"
	StateHeaderFailed   UnitState = "header_failed"
	StateRowsProcessing UnitState = "rows_processing"
	StateRolledBack     UnitState = "rolled_back"
	StateCommitted      UnitState = "committed"
)

// UnitReport aggregates the outcomes of one input unit.
type UnitReport struct {
	Unit          string    `json:"unit"`
	State         UnitState `json:"state"`
	RowsProcessed int       `json:"rows_processed"`
	Added         int       `json:"added"`
	Updated       int       `json:"updated"`
	Unchanged     int       `json:"unchanged"`
	Skipped       int       `json:"skipped"`
	Errors        int       `json:"errors"`
	Issues        []string  `json:"issues,omitempty"`
}

func (u *UnitReport) count(o Outcome) {
	switch o {
	case OutcomeAdded:
		u.Added++
	case OutcomeUpdated:
		u.Updated++
	case OutcomeUnchanged:
		u.Unchanged++
	case OutcomeSkipped:
		u.Skipped++
	case OutcomeError:
		u.Errors++
	}
}

// Report is the aggregate outcome of one import batch. It is the only
// failure channel the caller sees; no error escapes the coordinator under
// normal adverse conditions.
type Report struct {
	UnitsProcessed int          `json:"units_processed"`
	RowsProcessed  int          `json:"rows_processed"`
	Added          int          `json:"added"`
	Updated        int          `json:"updated"`
	Unchanged      int          `json:"unchanged"`
	Skipped        int          `json:"skipped"`
	Errors         int          `json:"errors"`
	Units          []UnitReport `json:"units"`
}

func (r *Report) merge(u UnitReport) {
	r.UnitsProcessed++
	r.RowsProcessed += u.RowsProcessed
	r.Added += u.Added
	r.Updated += u.Updated
	r.Unchanged += u.Unchanged
	r.Skipped += u.Skipped
	r.Errors += u.Errors
	r.Units = append(r.Units, u)
}

// Changed reports whether any unit committed a write.
func (r *Report) Changed() bool {
	return r.Added > 0 || r.Updated > 0
}
