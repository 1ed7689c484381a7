package notation

import (
	"testing"

	"github.com/Kouaj/Notations-sub000/entities"
)

func TestAggregateFrequencyAndIntensity(t *testing.T) {
	notes := []entities.Note{
		{Mildiou: 0, Oidium: 1},
		{Mildiou: 10, Oidium: 0},
		{Mildiou: 5, Oidium: 2},
	}
	res, ok := Aggregate(notes)
	if !ok {
		t.Fatal("expected a result")
	}
	if got := res.Frequence["mildiou"]; got != 66.67 {
		t.Fatalf("frequence mildiou = %v, want 66.67", got)
	}
	if got := res.Intensite["mildiou"]; got != 5 {
		t.Fatalf("intensite mildiou = %v, want 5", got)
	}
	if got := res.Frequence["oidium"]; got != 66.67 {
		t.Fatalf("frequence oidium = %v, want 66.67", got)
	}
	if got := res.Intensite["oidium"]; got != 1 {
		t.Fatalf("intensite oidium = %v, want 1", got)
	}
	// Untouched conditions are present and zero, not absent.
	if got, present := res.Frequence["botrytis"]; !present || got != 0 {
		t.Fatalf("frequence botrytis = %v (present=%v), want 0", got, present)
	}
}

func TestAggregateEmptyBatchHasNoResult(t *testing.T) {
	if _, ok := Aggregate(nil); ok {
		t.Fatal("empty batch must yield no result, not zeros")
	}
	if _, ok := Aggregate([]entities.Note{}); ok {
		t.Fatal("empty batch must yield no result, not zeros")
	}
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	a := []entities.Note{{Mildiou: 1}, {Mildiou: 2}, {Mildiou: 4}}
	b := []entities.Note{{Mildiou: 4}, {Mildiou: 1}, {Mildiou: 2}}
	ra, _ := Aggregate(a)
	rb, _ := Aggregate(b)
	for _, cond := range entities.Conditions {
		if ra.Frequence[cond] != rb.Frequence[cond] || ra.Intensite[cond] != rb.Intensite[cond] {
			t.Fatalf("order changed the result for %s", cond)
		}
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	notes := []entities.Note{{Mildiou: 3, Botrytis: 1}, {Oidium: 2}, {Blackrot: 7}}
	first, _ := Aggregate(notes)
	for i := 0; i < 5; i++ {
		again, _ := Aggregate(notes)
		for _, cond := range entities.Conditions {
			if first.Frequence[cond] != again.Frequence[cond] || first.Intensite[cond] != again.Intensite[cond] {
				t.Fatalf("run %d diverged for %s", i, cond)
			}
		}
	}
}
