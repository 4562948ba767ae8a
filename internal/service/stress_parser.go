package service

import (
	"encoding/json"
	"strings"

	"github.com/campuswell/stress-tracker/internal/domain"
)

// The parsers implement a result-or-nil contract: malformed AI output is a
// signal to fall back to the deterministic estimator, never an error. Genuine
// failures (network, auth, empty reply) are surfaced by the LLM client before
// text ever reaches this boundary.

type hourlyPayload struct {
	Samples []domain.StressSample `json:"samples"`
}

// parseHourlySamples decodes the AI reply as {"samples":[{"hour":H,"value":V},...]}.
// Out-of-range entries are clamped and kept, not discarded. When clamping (or
// the reply itself) produces several samples for one hour, the first wins;
// storage holds at most one row per hour. Returns nil when the text is not
// valid JSON of that shape or the samples array is absent or empty.
func parseHourlySamples(text string) []domain.StressSample {
	var payload hourlyPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil
	}
	if len(payload.Samples) == 0 {
		return nil
	}

	var seen [24]bool
	samples := make([]domain.StressSample, 0, len(payload.Samples))
	for _, s := range payload.Samples {
		clamped := s.Clamp()
		if seen[clamped.Hour] {
			continue
		}
		seen[clamped.Hour] = true
		samples = append(samples, clamped)
	}
	return samples
}

// parseForecast decodes the AI reply as {"emoji":"<e>","summary":"..."}.
// Returns nil when the text is not valid JSON of that shape or either field
// is blank.
func parseForecast(text string) *domain.StressForecast {
	var forecast domain.StressForecast
	if err := json.Unmarshal([]byte(text), &forecast); err != nil {
		return nil
	}
	if strings.TrimSpace(forecast.Emoji) == "" || strings.TrimSpace(forecast.Summary) == "" {
		return nil
	}
	return &forecast
}
