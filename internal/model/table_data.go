package model

type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// IsEmpty reports whether there is no row to show.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}
