// Package notation computes the derived metrics of a disease-note batch and
// owns the finish step that turns a batch into a history record.
package notation

import (
	"math"

	"github.com/Kouaj/Notations-sub000/entities"
)

// Result holds the two derived maps, keyed by condition name.
type Result struct {
	Frequence map[string]float64
	Intensite map[string]float64
}

// Aggregate reduces a batch of disease notes. For each tracked condition,
// intensity is the mean reading and frequency the share of notes with a
// positive reading, in percent, both rounded to two decimals. Pure and
// order-independent. An empty batch returns ok=false — "nothing to
// compute", which is not the same as a batch that computes to zeros.
func Aggregate(notes []entities.Note) (Result, bool) {
	if len(notes) == 0 {
		return Result{}, false
	}
	res := Result{
		Frequence: make(map[string]float64, len(entities.Conditions)),
		Intensite: make(map[string]float64, len(entities.Conditions)),
	}
	total := float64(len(notes))
	for _, cond := range entities.Conditions {
		var sum float64
		var positives int
		for _, n := range notes {
			v := n.Reading(cond)
			sum += v
			if v > 0 {
				positives++
			}
		}
		res.Frequence[cond] = round2(float64(positives) / total * 100)
		res.Intensite[cond] = round2(sum / total)
	}
	return res, true
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
