package serviceImp

import (
	"context"
	"strings"
	"time"

	"github.com/Kouaj/Notations-sub000/entities"
	histRepo "github.com/Kouaj/Notations-sub000/pkg/history/repository"
	"github.com/Kouaj/Notations-sub000/pkg/notation"
	"github.com/Kouaj/Notations-sub000/pkg/notation/service"
)

type notationSvc struct {
	hist histRepo.HistoryRepository
	now  func() time.Time
}

func New(hist histRepo.HistoryRepository) service.NotationService {
	return &notationSvc{hist: hist, now: time.Now}
}

func (s *notationSvc) Finish(ctx context.Context, b Batch) (*entities.Notation, error) {
	rec, err := s.build(b)
	if err != nil {
		return nil, err
	}
	if err := s.hist.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

type Batch = service.Batch

func (s *notationSvc) build(b Batch) (*entities.Notation, error) {
	if b.UserID == "" {
		return nil, &entities.ValidationError{Field: "user_id", Reason: "missing"}
	}
	if !b.Type.Valid() {
		return nil, &entities.ValidationError{Field: "type", Reason: "unknown"}
	}
	rec := &entities.Notation{
		UserID:       b.UserID,
		ReseauID:     b.Reseau.ID,
		ReseauName:   b.Reseau.Name,
		ParcelleID:   b.Parcelle.ID,
		ParcelleName: b.Parcelle.Name,
		PlacetteID:   b.PlacetteID,
		Type:         b.Type,
		Partie:       b.Partie,
		Date:         s.now(),
	}
	if rec.PlacetteID == 0 && b.Type.Kind() != entities.KindDisease {
		rec.PlacetteID = entities.PlacetteNone
	}

	switch b.Type.Kind() {
	case entities.KindDisease:
		if len(b.Notes) == 0 {
			return nil, &entities.ValidationError{Field: "notes", Reason: "empty"}
		}
		if !b.Partie.Valid() {
			return nil, &entities.ValidationError{Field: "partie", Reason: "unknown"}
		}
		res, ok := notation.Aggregate(b.Notes)
		if !ok {
			return nil, &entities.ValidationError{Field: "notes", Reason: "empty"}
		}
		rec.Notes = b.Notes
		rec.Count = len(b.Notes)
		rec.Frequence = res.Frequence
		rec.Intensite = res.Intensite

	case entities.KindMeasurement:
		switch b.Type {
		case entities.TypeHauteur:
			if b.Hauteur1 == nil || b.Hauteur2 == nil {
				return nil, &entities.ValidationError{Field: "hauteur", Reason: "missing"}
			}
			rec.Hauteur1, rec.Hauteur2 = b.Hauteur1, b.Hauteur2
		case entities.TypeComptage:
			if b.Comptage == nil {
				return nil, &entities.ValidationError{Field: "comptage", Reason: "missing"}
			}
			rec.Comptage = b.Comptage
		}
		rec.Count = 1

	case entities.KindFlag:
		if b.Fait == nil {
			return nil, &entities.ValidationError{Field: "fait", Reason: "missing"}
		}
		rec.Fait = b.Fait
		rec.Count = 1

	case entities.KindComment:
		if strings.TrimSpace(b.Commentaire) == "" {
			return nil, &entities.ValidationError{Field: "commentaire", Reason: "missing"}
		}
		rec.Commentaire = b.Commentaire
		rec.Count = 1
	}
	return rec, nil
}
