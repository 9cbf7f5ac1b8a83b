package core

// Table is an ordered-column table with one row per trace. Header values in
// SEG-Y are signed integers of at most 32 bits, so int64 holds every field.
type Table struct {
	Columns []string
	Values  map[string][]int64

	// Amplitudes is attached on demand and never persisted; when non-nil it
	// holds one sample series per row.
	Amplitudes [][]float32
}

func NewTable() *Table {
	return &Table{Values: map[string][]int64{}}
}

// AddColumn appends a named column. Adding an existing name overwrites its
// values but keeps its position.
func (t *Table) AddColumn(name string, values []int64) {
	if _, ok := t.Values[name]; !ok {
		t.Columns = append(t.Columns, name)
	}
	t.Values[name] = values
}

// Column returns the named column, or nil when absent.
func (t *Table) Column(name string) []int64 {
	return t.Values[name]
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.Values[name]
	return ok
}

// NumRows reports the row count, taken from the first column.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Values[t.Columns[0]])
}
