package service

import (
	"math"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
)

// Deterministic stress estimator, used whenever the AI path is unavailable or
// returns unparsable output. Pure arithmetic over in-memory collections; it
// always succeeds and always produces the same output for the same input.

const (
	// stressFloor is the base stress level before any signal weighting.
	stressFloor = 2.0
	stressCeil  = 10.0

	eventWeight      = 1.5
	assignmentWeight = 1.2

	// restingBPM is the baseline pulse; only elevation above it adds stress.
	restingBPM = 70
)

// estimateHourlyCurve computes the fallback hourly stress curve. It emits
// exactly 24 samples, hours 0-23 ascending. Hour extraction uses loc, the
// user's local timezone.
func estimateHourlyCurve(stressCtx domain.StressContext, loc *time.Location) []domain.StressSample {
	var eventCounts, assignmentCounts [24]int
	for _, ev := range stressCtx.Events {
		eventCounts[ev.StartAt.In(loc).Hour()]++
	}
	for _, a := range stressCtx.Assignments {
		assignmentCounts[a.DueAt.In(loc).Hour()]++
	}

	// First sample per hour wins for the direct heart weight; hours without a
	// direct sample use the all-day average as a softer baseline.
	var directBPM [24]int
	var hasDirect [24]bool
	for _, s := range stressCtx.HeartRates {
		h := s.RecordedAt.In(loc).Hour()
		if !hasDirect[h] {
			directBPM[h] = s.BPM
			hasDirect[h] = true
		}
	}

	baselineWeight := 0.0
	if len(stressCtx.HeartRates) > 0 {
		sum := 0
		for _, s := range stressCtx.HeartRates {
			sum += s.BPM
		}
		avg := math.Round(float64(sum) / float64(len(stressCtx.HeartRates)))
		baselineWeight = math.Max(0, avg-restingBPM) / 12.0
	}

	samples := make([]domain.StressSample, 0, 24)
	for h := 0; h < 24; h++ {
		heartWeight := baselineWeight
		if hasDirect[h] {
			heartWeight = math.Max(0, float64(directBPM[h]-restingBPM)) / 10.0
		}

		value := stressFloor +
			float64(eventCounts[h])*eventWeight +
			float64(assignmentCounts[h])*assignmentWeight +
			heartWeight
		samples = append(samples, domain.StressSample{
			Hour:  h,
			Value: math.Min(stressCeil, value),
		})
	}
	return samples
}

// estimateForecast computes the fallback qualitative forecast from a scalar
// day score with fixed three-tier bucketing. Lower bounds are inclusive: a
// score of exactly 7 is "intense", exactly 4 is "mixed".
func estimateForecast(stressCtx domain.StressContext) domain.StressForecast {
	heart := 0.0
	if len(stressCtx.HeartRates) > 0 {
		sum := 0
		for _, s := range stressCtx.HeartRates {
			sum += s.BPM
		}
		avg := float64(sum) / float64(len(stressCtx.HeartRates))
		heart = math.Max(0, avg-restingBPM) / 6.0
	}

	score := math.Min(stressCeil, stressFloor+
		float64(len(stressCtx.Events))*0.6+
		float64(len(stressCtx.Assignments))*0.8+
		heart)

	switch {
	case score >= 7:
		return domain.StressForecast{
			Emoji:   "😰",
			Summary: "Today looks intense. Pace yourself and take breathers between obligations.",
		}
	case score >= 4:
		return domain.StressForecast{
			Emoji:   "😐",
			Summary: "A mixed day ahead. Stay organized and you'll handle the pressure.",
		}
	default:
		return domain.StressForecast{
			Emoji:   "😄",
			Summary: "Light commitments today—perfect for catching up calmly.",
		}
	}
}
