package ranking

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Order is a sort direction.
type Order int

const (
	Descending Order = iota
	Ascending
)

// Flip returns the opposite direction.
func (o Order) Flip() Order {
	if o == Descending {
		return Ascending
	}
	return Descending
}

func (o Order) String() string {
	if o == Ascending {
		return "asc"
	}
	return "desc"
}

// Arrow is the indicator shown next to the active column heading.
func (o Order) Arrow() string {
	if o == Ascending {
		return "↑"
	}
	return "↓"
}

// ParseOrder accepts "asc"/"ascending" and "desc"/"descending".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return 0, fmt.Errorf("unknown sort order %q", s)
}

func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseOrder(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Sort returns a sorted copy of metrics ordered by field. The sort is
// stable: entries with equal values keep their input order in either
// direction. The input slice is not modified.
func Sort(metrics []AlgorithmMetrics, field Field, order Order) []AlgorithmMetrics {
	out := make([]AlgorithmMetrics, len(metrics))
	copy(out, metrics)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := field.Value(out[i]), field.Value(out[j])
		if order == Descending {
			return a > b
		}
		return a < b
	})

	return out
}
