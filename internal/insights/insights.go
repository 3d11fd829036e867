package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/focuskit/focuskit/internal/domain"
	"github.com/focuskit/focuskit/internal/timeutil"
)

// CorrelationWindowDays is how far back daily series are built.
const CorrelationWindowDays = 30

// reportThreshold is the minimum |r| for a correlation to be reported.
const reportThreshold = 0.3

// Strength buckets a correlation's magnitude.
type Strength string

const (
	StrengthWeak     Strength = "weak"
	StrengthModerate Strength = "moderate"
	StrengthStrong   Strength = "strong"
)

func strengthOf(abs float64) Strength {
	switch {
	case abs > 0.7:
		return StrengthStrong
	case abs > 0.5:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

// Correlation is one reported relationship between two daily series.
type Correlation struct {
	SeriesA  string
	SeriesB  string
	Score    float64
	Strength Strength
	Positive bool
	Insight  string
}

// seriesPair names a candidate relationship to test.
type seriesPair struct {
	nameA, nameB string
	kindA, kindB domain.EventKind
}

var candidatePairs = []seriesPair{
	{"habit completions", "tasks completed", domain.EventHabit, domain.EventTask},
	{"focus minutes", "tasks completed", domain.EventFocus, domain.EventTask},
	{"workouts", "habit completions", domain.EventWorkout, domain.EventHabit},
	{"journal entries", "focus minutes", domain.EventJournal, domain.EventFocus},
	{"workouts", "focus minutes", domain.EventWorkout, domain.EventFocus},
}

// DailySeries builds a per-date value series for one event kind over the
// correlation window. Habit-like kinds produce counts per day; focus events
// sum their values (minutes).
func DailySeries(events []domain.Event, kind domain.EventKind, now time.Time) []DailyPoint {
	cutoff := timeutil.StartOfDay(now).AddDate(0, 0, -(CorrelationWindowDays - 1))
	byDate := map[string]float64{}

	for _, e := range events {
		if e.Kind != kind || e.Timestamp.Before(cutoff) {
			continue
		}
		key := timeutil.DateKey(e.Timestamp)
		if kind == domain.EventFocus {
			byDate[key] += e.Value
		} else {
			byDate[key]++
		}
	}

	points := make([]DailyPoint, 0, len(byDate))
	for date, value := range byDate {
		points = append(points, DailyPoint{Date: date, Value: value})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// Correlations tests every candidate series pair against the event log and
// returns those with |score| above the report threshold, strongest first.
func Correlations(events []domain.Event, now time.Time) []Correlation {
	var results []Correlation

	for _, pair := range candidatePairs {
		a := DailySeries(events, pair.kindA, now)
		b := DailySeries(events, pair.kindB, now)

		score := Pearson(a, b)
		abs := math.Abs(score)
		if abs <= reportThreshold {
			continue
		}

		c := Correlation{
			SeriesA:  pair.nameA,
			SeriesB:  pair.nameB,
			Score:    score,
			Strength: strengthOf(abs),
			Positive: score > 0,
		}
		c.Insight = describe(c)
		results = append(results, c)
	}

	sort.Slice(results, func(i, j int) bool {
		return math.Abs(results[i].Score) > math.Abs(results[j].Score)
	})
	return results
}

// describe renders a natural-language insight line for a correlation.
func describe(c Correlation) string {
	direction := "more"
	if !c.Positive {
		direction = "fewer"
	}
	return fmt.Sprintf("Days with more %s tend to have %s %s (%s, r=%.2f).",
		c.SeriesA, direction, c.SeriesB, c.Strength, c.Score)
}
