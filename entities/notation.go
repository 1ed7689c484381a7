package entities

import "time"

// NotationType tags what kind of observation a batch records. The four
// disease scores only exist on "maladie"; the other types carry a single
// measurement, a done flag or a free comment.
type NotationType string

const (
	TypeMaladie      NotationType = "maladie"
	TypePheno        NotationType = "pheno"
	TypeHauteur      NotationType = "hauteur"
	TypeComptage     NotationType = "comptage"
	TypeRecouvrement NotationType = "recouvrement"
	TypeAnalyseSols  NotationType = "analyse_sols"
	TypeIrrigation   NotationType = "irrigation"
	TypeCommentaire  NotationType = "commentaire"
)

// NotationKind is the branch of the finish flow a type belongs to.
type NotationKind int

const (
	KindDisease NotationKind = iota
	KindMeasurement
	KindFlag
	KindComment
	KindUnknown
)

func (t NotationType) Kind() NotationKind {
	switch t {
	case TypeMaladie:
		return KindDisease
	case TypeHauteur, TypeComptage:
		return KindMeasurement
	case TypePheno, TypeRecouvrement, TypeAnalyseSols, TypeIrrigation:
		return KindFlag
	case TypeCommentaire:
		return KindComment
	}
	return KindUnknown
}

func (t NotationType) Valid() bool { return t.Kind() != KindUnknown }

// PartiePlante is the plant part a disease note was read on.
type PartiePlante string

const (
	PartieFeuilles PartiePlante = "feuilles"
	PartieGrappe   PartiePlante = "grappe"
)

func (p PartiePlante) Valid() bool {
	return p == PartieFeuilles || p == PartieGrappe
}

// Conditions is the fixed set of tracked diseases, in display order.
var Conditions = []string{"mildiou", "oidium", "blackrot", "botrytis"}

// Note is one observation reading. Value object: no identity, readings are
// non-negative (the UI coerces blank input to 0 before it gets here).
type Note struct {
	Mildiou  float64 `json:"mildiou"`
	Oidium   float64 `json:"oidium"`
	Blackrot float64 `json:"blackrot"`
	Botrytis float64 `json:"botrytis"`

	Partie PartiePlante `json:"partie"`
	Type   NotationType `json:"type,omitempty"`
	Date   time.Time    `json:"date"`

	// Non-disease observation payloads.
	Hauteur1    *float64 `json:"hauteur1,omitempty"`
	Hauteur2    *float64 `json:"hauteur2,omitempty"`
	Nb          *int     `json:"nb,omitempty"`
	Fait        *bool    `json:"fait,omitempty"`
	Commentaire string   `json:"commentaire,omitempty"`
}

// Reading returns the score for one tracked condition.
func (n Note) Reading(condition string) float64 {
	switch condition {
	case "mildiou":
		return n.Mildiou
	case "oidium":
		return n.Oidium
	case "blackrot":
		return n.Blackrot
	case "botrytis":
		return n.Botrytis
	}
	return 0
}

// PlacetteNone is the placette sentinel for notation types that are not
// recorded at placette level.
const PlacetteNone = -1

// Notation is one finalized observation batch: the history record. Immutable
// once written, only ever deleted. Frequence and Intensite are derived from
// Notes when Type is maladie and recomputing from Notes reproduces them.
type Notation struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       string       `gorm:"index" json:"user_id"`
	ReseauID     uint         `json:"reseau_id"`
	ReseauName   string       `json:"reseau_name"`
	ParcelleID   uint         `gorm:"index" json:"parcelle_id"`
	ParcelleName string       `json:"parcelle_name"`
	PlacetteID   int          `json:"placette_id"` // PlacetteNone when n/a
	Type         NotationType `json:"type"`
	Partie       PartiePlante `json:"partie,omitempty"`
	Date         time.Time    `json:"date"`
	Count        int          `json:"count"`

	// JSON text columns (gorm serializer); only filled for maladie.
	Notes     []Note             `gorm:"serializer:json" json:"notes,omitempty"`
	Frequence map[string]float64 `gorm:"serializer:json" json:"frequence,omitempty"`
	Intensite map[string]float64 `gorm:"serializer:json" json:"intensite,omitempty"`

	// Type-specific payloads.
	Hauteur1    *float64 `json:"hauteur1,omitempty"`
	Hauteur2    *float64 `json:"hauteur2,omitempty"`
	Comptage    *int     `json:"comptage,omitempty"`
	Fait        *bool    `json:"fait,omitempty"`
	Commentaire string   `json:"commentaire,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
