package entity

import (
	"encoding/json"
	"testing"
)

func TestPercentMarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value Percent
		want  string
	}{
		{"finite", Percent(50), "50"},
		{"fractional", Percent(12.5), "12.5"},
		{"zero", Percent(0), "0"},
		{"unbounded", UnboundedChangePct, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal %v = %s, want %s", float64(tt.value), data, tt.want)
			}
		})
	}
}

func TestPercentUnmarshalJSON(t *testing.T) {
	var p Percent
	if err := json.Unmarshal([]byte("null"), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.IsUnbounded() {
		t.Errorf("null should restore the unbounded sentinel, got %v", float64(p))
	}

	if err := json.Unmarshal([]byte("50"), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 50 {
		t.Errorf("unmarshal 50 = %v", float64(p))
	}
}

func TestPercentRoundTripInDelta(t *testing.T) {
	delta := PeriodDelta{IncomeChangePct: UnboundedChangePct, ExpenseChangePct: Percent(-12.5)}

	data, err := json.Marshal(delta)
	if err != nil {
		t.Fatalf("marshal should not fail on the unbounded sentinel: %v", err)
	}

	var restored PeriodDelta
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !restored.IncomeChangePct.IsUnbounded() {
		t.Errorf("income pct = %v, want unbounded", float64(restored.IncomeChangePct))
	}
	if restored.ExpenseChangePct != Percent(-12.5) {
		t.Errorf("expense pct = %v, want -12.5", float64(restored.ExpenseChangePct))
	}
}
