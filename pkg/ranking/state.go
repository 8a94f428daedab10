package ranking

// SortState is the active column and direction of the comparison table.
// It is a value: Select returns a new state instead of mutating.
type SortState struct {
	SortBy Field `json:"sort_by"`
	Order  Order `json:"order"`
}

// DefaultSortState sorts by accuracy, highest first.
func DefaultSortState() SortState {
	return SortState{SortBy: Accuracy, Order: Descending}
}

// Select applies a column click. Clicking the active column flips the
// direction; clicking another column selects it, descending.
func (s SortState) Select(field Field) SortState {
	if s.SortBy == field {
		return SortState{SortBy: field, Order: s.Order.Flip()}
	}
	return SortState{SortBy: field, Order: Descending}
}

// Cell is one classified metric value.
type Cell struct {
	Field Field   `json:"field"`
	Value float64 `json:"value"`
	Tier  Tier    `json:"tier"`
}

// Row is one catalogue entry ready for display.
type Row struct {
	Rank           int    `json:"rank"`
	Name           string `json:"name"`
	IsTopPerformer bool   `json:"is_top_performer"`
	Cells          []Cell `json:"cells"`
}

// Table is the sorted, classified comparison table.
type Table struct {
	State SortState `json:"state"`
	Rows  []Row     `json:"rows"`
}

// Rank sorts the catalogue by state and classifies every cell.
func Rank(state SortState) Table {
	sorted := Sort(Catalogue(), state.SortBy, state.Order)

	table := Table{State: state, Rows: make([]Row, 0, len(sorted))}
	for i, m := range sorted {
		row := Row{
			Rank:           i + 1,
			Name:           m.Name,
			IsTopPerformer: m.IsTopPerformer,
		}
		for _, f := range Fields() {
			v := f.Value(m)
			row.Cells = append(row.Cells, Cell{Field: f, Value: v, Tier: Classify(v, f)})
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
