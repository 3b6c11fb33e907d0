// Package sample builds realistic demo batches so the engine can be
// exercised without real plant data. Generated months never carry a zero
// denominator, and execution counts track their programmed counterparts
// the way a reasonably run safety program would.
package sample

import (
	"math/rand"
	"time"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
)

// Generator produces a deterministic batch for a given seed.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Year produces twelve consecutive months of coherent activity data.
func (g *Generator) Year(year int) []domain.RawRecord {
	records := make([]domain.RawRecord, 0, 12)
	for m := time.January; m <= time.December; m++ {
		records = append(records, g.month(domain.Period{Year: year, Month: m}))
	}
	return records
}

func (g *Generator) month(period domain.Period) domain.RawRecord {
	workers := g.between(80, 150)
	workDays := g.between(20, 23)

	lesions := g.weighted([]float64{0, 1, 2}, []float64{0.70, 0.25, 0.05})
	var lostDays float64
	if lesions > 0 {
		lostDays = lesions * g.between(1, 5)
	}

	riskProgrammed := g.between(8, 15)
	observationsProgrammed := g.between(10, 20)
	peopleExpected := g.between(30, 50)
	dialoguesPlanned := g.between(4, 8)
	attendeesExpected := g.between(20, 40)
	hazardsDetected := g.between(5, 15)
	trainingProgrammed := g.between(15, 30)
	standardsApplicable := g.between(10, 20)
	actionsProposed := g.between(3, 8)
	elementsTotal := g.between(15, 25)

	return domain.RawRecord{
		Period:                 period,
		HoursWorked:            workers * workDays * 8,
		Workers:                workers,
		InjuriesWithLeave:      lesions,
		LostDays:               lostDays,
		RiskAnalysesExecuted:   g.fraction(riskProgrammed, 0.75, 1.0),
		RiskAnalysesProgrammed: riskProgrammed,
		ObservationsPerformed:  g.fraction(observationsProgrammed, 0.70, 1.0),
		ObservationsProgrammed: observationsProgrammed,
		PeopleConforming:       g.fraction(peopleExpected, 0.75, 0.95),
		PeopleExpected:         peopleExpected,
		DialoguesHeld:          g.fraction(dialoguesPlanned, 0.75, 1.0),
		DialoguesPlanned:       dialoguesPlanned,
		Attendees:              g.fraction(attendeesExpected, 0.80, 1.0),
		AttendeesExpected:      attendeesExpected,
		HazardsEliminated:      g.fraction(hazardsDetected, 0.70, 0.95),
		HazardsDetected:        hazardsDetected,
		WorkersTrained:         g.fraction(trainingProgrammed, 0.75, 1.0),
		TrainingProgrammed:     trainingProgrammed,
		StandardsComplied:      g.fraction(standardsApplicable, 0.75, 0.98),
		StandardsApplicable:    standardsApplicable,
		ActionsImplemented:     g.fraction(actionsProposed, 0.70, 1.0),
		ActionsProposed:        actionsProposed,
		ElementsAudited:        g.fraction(elementsTotal, 0.75, 0.95),
		ElementsTotal:          elementsTotal,
	}
}

// between returns an integer-valued count in [lo, hi].
func (g *Generator) between(lo, hi int) float64 {
	return float64(lo + g.rng.Intn(hi-lo+1))
}

// fraction scales a programmed count by a random completion rate,
// truncating to a whole count.
func (g *Generator) fraction(base, lo, hi float64) float64 {
	rate := lo + g.rng.Float64()*(hi-lo)
	return float64(int(base * rate))
}

func (g *Generator) weighted(values, weights []float64) float64 {
	var total float64
	for _, w := range weights {
		total += w
	}
	roll := g.rng.Float64() * total
	for i, w := range weights {
		if roll < w {
			return values[i]
		}
		roll -= w
	}
	return values[len(values)-1]
}
