package ranking

import (
	"encoding/json"
	"fmt"
)

// Field is one sortable numeric column of the catalogue.
type Field int

const (
	Accuracy Field = iota
	Precision
	Recall
	F1Score
	AUCROC
	TrainingTime
)

// Fields returns every sortable column in table order.
func Fields() []Field {
	return []Field{Accuracy, Precision, Recall, F1Score, AUCROC, TrainingTime}
}

// Value reads the column's value from m.
func (f Field) Value(m AlgorithmMetrics) float64 {
	switch f {
	case Accuracy:
		return m.Accuracy
	case Precision:
		return m.Precision
	case Recall:
		return m.Recall
	case F1Score:
		return m.F1Score
	case AUCROC:
		return m.AUCROC
	case TrainingTime:
		return m.TrainingTime
	default:
		panic(fmt.Sprintf("ranking: unknown field %d", int(f)))
	}
}

// String returns the machine key, matching the JSON tag of the column.
func (f Field) String() string {
	switch f {
	case Accuracy:
		return "accuracy"
	case Precision:
		return "precision"
	case Recall:
		return "recall"
	case F1Score:
		return "f1_score"
	case AUCROC:
		return "auc_roc"
	case TrainingTime:
		return "training_time"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Label returns the column heading.
func (f Field) Label() string {
	switch f {
	case Accuracy:
		return "Accuracy (%)"
	case Precision:
		return "Precision (%)"
	case Recall:
		return "Recall (%)"
	case F1Score:
		return "F1-Score (%)"
	case AUCROC:
		return "AUC-ROC (%)"
	case TrainingTime:
		return "Time (s)"
	default:
		return f.String()
	}
}

// ParseField accepts a column key, either snake_case or the camelCase form
// the web client sends.
func ParseField(s string) (Field, error) {
	switch s {
	case "accuracy":
		return Accuracy, nil
	case "precision":
		return Precision, nil
	case "recall":
		return Recall, nil
	case "f1_score", "f1Score":
		return F1Score, nil
	case "auc_roc", "aucRoc":
		return AUCROC, nil
	case "training_time", "trainingTime":
		return TrainingTime, nil
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseField(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
