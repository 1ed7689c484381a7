package selection

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/entities"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	return New(database.NewManager(path)), path
}

func TestSingletonOverwriteAndClear(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	var got entities.Parcelle
	if ok, err := s.Get(ctx, KindSelectedParcelle, &got); err != nil || ok {
		t.Fatalf("expected absent slot, got ok=%v err=%v", ok, err)
	}

	a := entities.Parcelle{ID: 1, Name: "A"}
	b := entities.Parcelle{ID: 2, Name: "B"}
	if err := s.Set(ctx, KindSelectedParcelle, a); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if err := s.Set(ctx, KindSelectedParcelle, b); err != nil {
		t.Fatalf("set b: %v", err)
	}
	ok, err := s.Get(ctx, KindSelectedParcelle, &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.ID != 2 || got.Name != "B" {
		t.Fatalf("expected exactly B, got %+v", got)
	}

	if err := s.Set(ctx, KindSelectedParcelle, nil); err != nil {
		t.Fatalf("clear via nil: %v", err)
	}
	if ok, err := s.Get(ctx, KindSelectedParcelle, &got); err != nil || ok {
		t.Fatalf("expected cleared slot, got ok=%v err=%v", ok, err)
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, KindSelectedReseau, entities.Reseau{ID: 7, Name: "Net"}); err != nil {
		t.Fatalf("set reseau: %v", err)
	}
	if err := s.Clear(ctx, KindSelectedParcelle); err != nil {
		t.Fatalf("clear other slot: %v", err)
	}
	var rs entities.Reseau
	if ok, err := s.Get(ctx, KindSelectedReseau, &rs); err != nil || !ok || rs.ID != 7 {
		t.Fatalf("reseau slot disturbed: ok=%v err=%v %+v", ok, err, rs)
	}
}

func TestSurvivesReopen(t *testing.T) {
	s, path := newStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, KindSelectedReseau, entities.Reseau{ID: 3, Name: "Net"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	// A second manager over the same file sees the selection.
	s2 := New(database.NewManager(path))
	var rs entities.Reseau
	if ok, err := s2.Get(ctx, KindSelectedReseau, &rs); err != nil || !ok || rs.ID != 3 {
		t.Fatalf("expected selection after reopen: ok=%v err=%v %+v", ok, err, rs)
	}
}
