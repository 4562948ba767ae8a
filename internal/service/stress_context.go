package service

import (
	"github.com/campuswell/stress-tracker/internal/domain"
)

// BuildStressContext groups the day's signals into a single context object.
// Pure data grouping: no filtering, no I/O. Empty collections are valid and
// yield "no signal" results downstream.
func BuildStressContext(events []domain.Event, assignments []domain.Assignment, heartRates []domain.HeartRateSample) domain.StressContext {
	return domain.StressContext{
		Events:      events,
		Assignments: assignments,
		HeartRates:  heartRates,
	}
}
