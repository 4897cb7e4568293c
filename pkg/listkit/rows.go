package listkit

import (
	"maps"
	"slices"
)

// Row is the data of one grid row.
type Row struct {
	Cells        []string
	DefaultStyle CellStyle
	CellStyles   map[int]CellStyle // Per-column overrides
}

// Cell returns the text in column col, "" past the end.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col]
}

func (r Row) clone() Row {
	return Row{
		Cells:        slices.Clone(r.Cells),
		DefaultStyle: r.DefaultStyle,
		CellStyles:   maps.Clone(r.CellStyles),
	}
}

// RowState is either Shared, pointing at a prototype row that many rows
// read through, or Individualized, owning its data.
type RowState struct {
	prototype int
	owned     *Row
}

// Shared returns the state of a row that reads through prototype.
func Shared(prototype int) RowState { return RowState{prototype: prototype} }

// Individualized returns the state of a row owning a copy of row.
func Individualized(row Row) RowState {
	c := row.clone()
	return RowState{prototype: -1, owned: &c}
}

// IsShared reports whether the row reads through a prototype.
func (s RowState) IsShared() bool { return s.owned == nil }

// Prototype returns the prototype index, or -1 for an individualized row.
func (s RowState) Prototype() int {
	if s.owned != nil {
		return -1
	}
	return s.prototype
}

// Rows stores grid rows. Rows added with AddShared cost one RowState each
// until something writes to them; Materialize gives such a row its own
// copy and is the only way a row leaves the shared state.
type Rows struct {
	prototypes []Row
	states     []RowState
}

// AddPrototype registers a row many rows can share and returns its index.
func (r *Rows) AddPrototype(row Row) int {
	r.prototypes = append(r.prototypes, row.clone())
	return len(r.prototypes) - 1
}

// Prototype returns a copy of prototype p.
func (r *Rows) Prototype(p int) (Row, error) {
	if p < 0 || p >= len(r.prototypes) {
		return Row{}, rejected(argumentError("prototype", p))
	}
	return r.prototypes[p].clone(), nil
}

// AddShared appends count rows reading through prototype p and returns the
// index of the first.
func (r *Rows) AddShared(p, count int) (int, error) {
	if p < 0 || p >= len(r.prototypes) {
		return -1, rejected(argumentError("add_shared", p))
	}
	if count < 0 {
		return -1, rejected(argumentError("add_shared", -1))
	}
	first := len(r.states)
	for range count {
		r.states = append(r.states, Shared(p))
	}
	return first, nil
}

// Add appends an individualized row and returns its index.
func (r *Rows) Add(row Row) int {
	r.states = append(r.states, Individualized(row))
	return len(r.states) - 1
}

// Len returns the number of rows.
func (r *Rows) Len() int { return len(r.states) }

// State returns the sharing state of row i.
func (r *Rows) State(i int) (RowState, error) {
	if i < 0 || i >= len(r.states) {
		return RowState{}, rejected(argumentError("row_state", i))
	}
	return r.states[i], nil
}

// SharedCount returns how many rows still read through a prototype.
func (r *Rows) SharedCount() int {
	n := 0
	for _, s := range r.states {
		if s.IsShared() {
			n++
		}
	}
	return n
}

// view returns row i without copying. Callers must not mutate it.
func (r *Rows) view(i int) *Row {
	s := r.states[i]
	if s.owned != nil {
		return s.owned
	}
	return &r.prototypes[s.prototype]
}

// Row returns a copy of row i.
func (r *Rows) Row(i int) (Row, error) {
	if i < 0 || i >= len(r.states) {
		return Row{}, rejected(argumentError("row", i))
	}
	return r.view(i).clone(), nil
}

// Materialize turns row i into an individualized row and returns its data
// for writing. Individualized rows are returned as they are.
func (r *Rows) Materialize(i int) (*Row, error) {
	if i < 0 || i >= len(r.states) {
		return nil, rejected(argumentError("materialize", i))
	}
	s := r.states[i]
	if s.owned == nil {
		GetLogger().Debug("materializing shared row", "row", i, "prototype", s.prototype)
		r.states[i] = Individualized(r.prototypes[s.prototype])
	}
	return r.states[i].owned, nil
}

// removeAt deletes row i. Removal goes through Grid so the cell selection
// is renumbered with it.
func (r *Rows) removeAt(i int) error {
	if i < 0 || i >= len(r.states) {
		return rejected(argumentError("remove_row", i))
	}
	r.states = slices.Delete(r.states, i, i+1)
	return nil
}

// clear removes every row. Prototypes are kept.
func (r *Rows) clear() { r.states = nil }
