package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
)

// maxPromptItems caps how many events/assignments are listed in a prompt.
const maxPromptItems = 10

const hourlyPromptTemplate = `Estimate this student's stress level for each hour of %s.

Today's events:
%s

Assignments due:
%s

Heart rate readings (bpm): %s

Respond with strictly the JSON shape {"samples":[{"hour":H,"value":V}, ...]} containing exactly 24 entries, one per hour 0-23. "value" is a number from 0 (calm) to 10 (extreme stress). No extra fields. No comments. No backticks.`

const forecastPromptTemplate = `Give a one-shot stress forecast for this student's day on %s.

Today's events:
%s

Assignments due:
%s

Heart rate readings (bpm): %s

Respond with strictly the JSON shape {"emoji":"<e>","summary":"<2-3 sentences>"}. The emoji is a single character describing the day. No extra fields. No comments. No backticks.`

// buildHourlyPrompt formats the hourly-curve request for a target date.
// Deterministic string formatting, no side effects.
func buildHourlyPrompt(stressCtx domain.StressContext, date time.Time, loc *time.Location) string {
	return fmt.Sprintf(hourlyPromptTemplate,
		date.In(loc).Format(domain.DateKeyFormat),
		formatEvents(stressCtx.Events, loc),
		formatAssignments(stressCtx.Assignments, loc),
		formatHeartRates(stressCtx.HeartRates),
	)
}

// buildForecastPrompt formats the qualitative-forecast request for a target date.
func buildForecastPrompt(stressCtx domain.StressContext, date time.Time, loc *time.Location) string {
	return fmt.Sprintf(forecastPromptTemplate,
		date.In(loc).Format(domain.DateKeyFormat),
		formatEvents(stressCtx.Events, loc),
		formatAssignments(stressCtx.Assignments, loc),
		formatHeartRates(stressCtx.HeartRates),
	)
}

func formatEvents(events []domain.Event, loc *time.Location) string {
	if len(events) == 0 {
		return "- none"
	}

	sorted := make([]domain.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartAt.Before(sorted[j].StartAt)
	})
	if len(sorted) > maxPromptItems {
		sorted = sorted[:maxPromptItems]
	}

	lines := make([]string, 0, len(sorted))
	for _, ev := range sorted {
		lines = append(lines, fmt.Sprintf("- %s at %s (%s)",
			ev.Title, ev.StartAt.In(loc).Format("3:04 PM"), ev.Category))
	}
	return strings.Join(lines, "\n")
}

func formatAssignments(assignments []domain.Assignment, loc *time.Location) string {
	if len(assignments) == 0 {
		return "- none"
	}

	sorted := make([]domain.Assignment, len(assignments))
	copy(sorted, assignments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueAt.Before(sorted[j].DueAt)
	})
	if len(sorted) > maxPromptItems {
		sorted = sorted[:maxPromptItems]
	}

	lines := make([]string, 0, len(sorted))
	for _, a := range sorted {
		lines = append(lines, fmt.Sprintf("- %s due %s",
			a.Title, a.DueAt.In(loc).Format("Jan 2, 3:04 PM")))
	}
	return strings.Join(lines, "\n")
}

func formatHeartRates(samples []domain.HeartRateSample) string {
	if len(samples) == 0 {
		return "No heart data"
	}

	readings := make([]string, 0, len(samples))
	for _, s := range samples {
		readings = append(readings, strconv.Itoa(s.BPM))
	}
	return strings.Join(readings, ", ")
}
