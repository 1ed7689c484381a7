package repositoryImp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/entities"
	"github.com/Kouaj/Notations-sub000/pkg/parcelle/repository"
	"github.com/Kouaj/Notations-sub000/pkg/selection"
)

func newRepo(t *testing.T) repository.ParcelleRepository {
	t.Helper()
	m := database.NewManager(filepath.Join(t.TempDir(), "state.db"))
	return New(m, selection.New(m))
}

func TestSaveRoundTripWithDenormalizedName(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	p := &entities.Parcelle{Name: "F1", ReseauID: 1, ReseauName: "Net1", UserID: "u1"}
	if err := r.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "F1" || got.ReseauID != 1 || got.ReseauName != "Net1" || got.UserID != "u1" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestFilters(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	for _, p := range []entities.Parcelle{
		{Name: "A", ReseauID: 1, UserID: "u1"},
		{Name: "B", ReseauID: 1, UserID: "u1"},
		{Name: "C", ReseauID: 2, UserID: "u1"},
		{Name: "D", ReseauID: 3, UserID: "u2"},
	} {
		p := p
		if err := r.Save(ctx, &p); err != nil {
			t.Fatalf("save %s: %v", p.Name, err)
		}
	}
	byNet, err := r.GetByReseau(ctx, 1)
	if err != nil || len(byNet) != 2 {
		t.Fatalf("by reseau: %d, %v", len(byNet), err)
	}
	byUser, err := r.GetByUser(ctx, "u1")
	if err != nil || len(byUser) != 3 {
		t.Fatalf("by user: %d, %v", len(byUser), err)
	}
	empty, err := r.GetByReseau(ctx, 99)
	if err != nil || len(empty) != 0 {
		t.Fatalf("missing reseau should read empty, got %d, %v", len(empty), err)
	}
}

func TestPlacettesIndexedByParent(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	p := &entities.Parcelle{Name: "F1", ReseauID: 1, UserID: "u1"}
	if err := r.Save(ctx, p); err != nil {
		t.Fatalf("save parcelle: %v", err)
	}
	for _, name := range []string{"S1", "S2"} {
		if err := r.SavePlacette(ctx, &entities.Placette{Name: name, ParcelleID: p.ID}); err != nil {
			t.Fatalf("save placette %s: %v", name, err)
		}
	}
	// A placette under another parcelle must not leak into the listing.
	if err := r.SavePlacette(ctx, &entities.Placette{Name: "other", ParcelleID: p.ID + 100}); err != nil {
		t.Fatalf("save foreign placette: %v", err)
	}
	pls, err := r.GetPlacettes(ctx, p.ID)
	if err != nil {
		t.Fatalf("get placettes: %v", err)
	}
	if len(pls) != 2 {
		t.Fatalf("expected 2 placettes, got %d", len(pls))
	}

	if err := r.DeletePlacette(ctx, pls[0].ID); err != nil {
		t.Fatalf("delete placette: %v", err)
	}
	pls, _ = r.GetPlacettes(ctx, p.ID)
	if len(pls) != 1 {
		t.Fatalf("expected 1 placette after delete, got %d", len(pls))
	}
}

func TestDeleteRemovesChildPlacettes(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	p := &entities.Parcelle{Name: "F1", ReseauID: 1, UserID: "u1"}
	if err := r.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := r.SavePlacette(ctx, &entities.Placette{Name: "S1", ParcelleID: p.ID}); err != nil {
		t.Fatalf("save placette: %v", err)
	}
	if err := r.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.GetByID(ctx, p.ID); !database.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	pls, err := r.GetPlacettes(ctx, p.ID)
	if err != nil || len(pls) != 0 {
		t.Fatalf("expected orphan placettes removed, got %d, %v", len(pls), err)
	}
}

func TestSelectionSingleton(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	a := &entities.Parcelle{Name: "A", ReseauID: 1, UserID: "u1"}
	b := &entities.Parcelle{Name: "B", ReseauID: 1, UserID: "u1"}
	for _, p := range []*entities.Parcelle{a, b} {
		if err := r.Save(ctx, p); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	if err := r.SetSelected(ctx, a); err != nil {
		t.Fatalf("select a: %v", err)
	}
	if err := r.SetSelected(ctx, b); err != nil {
		t.Fatalf("select b: %v", err)
	}
	sel, err := r.Selected(ctx)
	if err != nil || sel == nil || sel.ID != b.ID {
		t.Fatalf("expected B selected, got %+v, %v", sel, err)
	}
	if err := r.SetSelected(ctx, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if sel, err := r.Selected(ctx); err != nil || sel != nil {
		t.Fatalf("expected cleared selection, got %+v, %v", sel, err)
	}
}
