package importer

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/crosayo/cardstock/internal/model"
)

// fakeStore is an in-memory Store. Scopes snapshot the item slice and restore
// it on error, mimicking savepoint rollback.
type fakeStore struct {
	items     []model.Item
	nextID    uint
	insertErr func(*model.Item) error
	probeErr  error
}

func (f *fakeStore) FindByNaturalKey(cardID, rare string) (*model.Item, error) {
	for i := range f.items {
		if f.items[i].CardIDValue() == cardID && f.items[i].Rare == rare {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Insert(item *model.Item) error {
	if f.insertErr != nil {
		if err := f.insertErr(item); err != nil {
			return err
		}
	}
	f.nextID++
	item.ID = f.nextID
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeStore) UpdateInfo(id uint, name, category string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Name = name
			f.items[i].Category = category
			return nil
		}
	}
	return errors.New("no such item")
}

func (f *fakeStore) scope(fn func(Store) error) error {
	snapshot := append([]model.Item(nil), f.items...)
	if err := fn(f); err != nil {
		f.items = snapshot
		return err
	}
	return nil
}

func (f *fakeStore) InBatch(fn func(Store) error) error { return f.scope(fn) }
func (f *fakeStore) InUnit(fn func(Store) error) error  { return f.scope(fn) }
func (f *fakeStore) InRow(fn func(Store) error) error   { return f.scope(fn) }
func (f *fakeStore) Probe() error                       { return f.probeErr }

func (f *fakeStore) find(cardID, rare string) *model.Item {
	item, _ := f.FindByNaturalKey(cardID, rare)
	return item
}

func newTestReconciler() *Reconciler {
	return NewReconciler(zap.NewNop())
}

func TestApplyInsertsNewEntry(t *testing.T) {
	s := &fakeStore{}
	rec := Record{Line: 2, Name: "Blue-Eyes", CardID: "SUDA-JP001", Rare: "ultra", Stock: "3"}

	result, err := newTestReconciler().Apply(s, rec, "SUPREME DARKNESS")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.Outcome != OutcomeAdded {
		t.Fatalf("outcome = %s, want added", result.Outcome)
	}
	item := s.find("SUDA-JP001", "UR")
	if item == nil {
		t.Fatal("item not stored under canonical rarity UR")
	}
	if item.Stock != 3 {
		t.Errorf("stock = %d, want 3", item.Stock)
	}
	if item.Category != "SUPREME DARKNESS" {
		t.Errorf("category fallback not applied: %q", item.Category)
	}
}

func TestApplySkipsRowMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"empty name", Record{Line: 3, Rare: "UR"}},
		{"empty rarity", Record{Line: 4, Name: "Blue-Eyes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeStore{}
			result, err := newTestReconciler().Apply(s, tt.rec, "")
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if result.Outcome != OutcomeSkipped {
				t.Errorf("outcome = %s, want skipped", result.Outcome)
			}
			if result.Issue == "" {
				t.Error("skipped row carries no issue")
			}
			if len(s.items) != 0 {
				t.Error("skipped row wrote to store")
			}
		})
	}
}

func TestApplyStockDefaultsToZero(t *testing.T) {
	for _, stock := range []string{"", "abc", "-3", "1.5"} {
		s := &fakeStore{}
		rec := Record{Line: 2, Name: "A", CardID: "SUDA-JP001", Rare: "UR", Stock: stock}
		if _, err := newTestReconciler().Apply(s, rec, ""); err != nil {
			t.Fatalf("Apply(stock=%q): %v", stock, err)
		}
		if got := s.items[0].Stock; got != 0 {
			t.Errorf("stock %q stored as %d, want 0", stock, got)
		}
	}
}

func TestApplyUnknownRarityPassesThrough(t *testing.T) {
	s := &fakeStore{}
	rec := Record{Line: 2, Name: "A", CardID: "SUDA-JP001", Rare: "mystery rare"}
	result, err := newTestReconciler().Apply(s, rec, "")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.Outcome != OutcomeAdded {
		t.Fatalf("outcome = %s, want added", result.Outcome)
	}
	if s.items[0].Rare != "mystery rare" {
		t.Errorf("rare = %q, want passthrough", s.items[0].Rare)
	}
}

func TestApplyMatchLeavesStockAlone(t *testing.T) {
	cardID := "SUDA-JP001"
	s := &fakeStore{
		items:  []model.Item{{ID: 1, Name: "Old Name", CardID: &cardID, Rare: "UR", Stock: 7, Category: "old"}},
		nextID: 1,
	}
	rec := Record{Line: 2, Name: "New Name", CardID: "SUDA-JP001", Rare: "ultra", Stock: "99", Category: "new"}

	result, err := newTestReconciler().Apply(s, rec, "")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.Outcome != OutcomeUpdated {
		t.Fatalf("outcome = %s, want updated", result.Outcome)
	}
	item := s.find("SUDA-JP001", "UR")
	if item.Name != "New Name" || item.Category != "new" {
		t.Errorf("info not updated: %+v", item)
	}
	if item.Stock != 7 {
		t.Errorf("stock = %d, existing stock must never change on update", item.Stock)
	}
}

func TestApplyEquivalentSpellingIsUnchanged(t *testing.T) {
	cardID := "SUDA-JP001"
	s := &fakeStore{
		items:  []model.Item{{ID: 1, Name: "blue-eyes", CardID: &cardID, Rare: "UR", Stock: 7, Category: "box a"}},
		nextID: 1,
	}
	// full-width, differently-cased spelling of the same name and category
	rec := Record{Line: 2, Name: "Blue-Eyes", CardID: "SUDA-JP001", Rare: "UR", Category: "BOX A"}

	result, err := newTestReconciler().Apply(s, rec, "")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.Outcome != OutcomeUnchanged {
		t.Errorf("outcome = %s, want unchanged", result.Outcome)
	}
	if s.items[0].Name != "blue-eyes" {
		t.Errorf("stored name rewritten to %q", s.items[0].Name)
	}
}

func TestApplyWithoutCardIDAlwaysInserts(t *testing.T) {
	s := &fakeStore{}
	rec := Record{Line: 2, Name: "Promo", Rare: "P", Stock: "1"}
	r := newTestReconciler()

	for i := 0; i < 2; i++ {
		result, err := r.Apply(s, rec, "")
		if err != nil {
			t.Fatalf("Apply #%d: %v", i+1, err)
		}
		if result.Outcome != OutcomeAdded {
			t.Fatalf("Apply #%d outcome = %s, want added", i+1, result.Outcome)
		}
	}
	if len(s.items) != 2 {
		t.Errorf("items = %d, rows without card_id must never deduplicate", len(s.items))
	}
}

func TestApplyRowScopedStoreError(t *testing.T) {
	s := &fakeStore{
		insertErr: func(item *model.Item) error {
			return errors.New("duplicate key value")
		},
	}
	rec := Record{Line: 2, Name: "A", CardID: "SUDA-JP001", Rare: "UR"}

	result, err := newTestReconciler().Apply(s, rec, "")
	if err != nil {
		t.Fatalf("row-scoped failure must not abort the unit: %v", err)
	}
	if result.Outcome != OutcomeError {
		t.Errorf("outcome = %s, want error", result.Outcome)
	}
	if result.Issue == "" {
		t.Error("error outcome carries no issue")
	}
}

func TestApplyDeadStoreAbortsUnit(t *testing.T) {
	s := &fakeStore{
		insertErr: func(item *model.Item) error {
			return errors.New("connection reset")
		},
		probeErr: errors.New("connection reset"),
	}
	rec := Record{Line: 2, Name: "A", CardID: "SUDA-JP001", Rare: "UR"}

	_, err := newTestReconciler().Apply(s, rec, "")
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *PersistenceError", err)
	}
	if perr.Scope != ScopeUnit {
		t.Errorf("scope = %v, want unit-fatal", perr.Scope)
	}
}
