package service

import (
	"testing"

	"github.com/campuswell/stress-tracker/internal/domain"
)

func TestParseHourlySamplesValid(t *testing.T) {
	text := `{"samples":[{"hour":0,"value":2.5},{"hour":1,"value":3.0}]}`

	samples := parseHourlySamples(text)
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0] != (domain.StressSample{Hour: 0, Value: 2.5}) {
		t.Fatalf("unexpected first sample: %+v", samples[0])
	}
}

func TestParseHourlySamplesClampsOutOfRange(t *testing.T) {
	text := `{"samples":[{"hour":30,"value":15},{"hour":-2,"value":-1}]}`

	samples := parseHourlySamples(text)
	if len(samples) != 2 {
		t.Fatalf("out-of-range entries must be clamped and kept, got %d samples", len(samples))
	}
	if samples[0].Hour != 23 || samples[0].Value != 10 {
		t.Fatalf("expected clamp to hour=23 value=10, got %+v", samples[0])
	}
	if samples[1].Hour != 0 || samples[1].Value != 0 {
		t.Fatalf("expected clamp to hour=0 value=0, got %+v", samples[1])
	}
}

func TestParseHourlySamplesDeduplicatesHours(t *testing.T) {
	// Clamping hour 30 collides with the explicit hour 23 entry. Storage keeps
	// one row per hour, so the parser must emit each hour at most once.
	text := `{"samples":[{"hour":30,"value":5},{"hour":23,"value":4},{"hour":9,"value":3},{"hour":9,"value":8}]}`

	samples := parseHourlySamples(text)
	if len(samples) != 2 {
		t.Fatalf("expected 2 deduplicated samples, got %d: %+v", len(samples), samples)
	}

	var seen [24]int
	for _, s := range samples {
		seen[s.Hour]++
	}
	for hour, count := range seen {
		if count > 1 {
			t.Fatalf("hour %d appears %d times", hour, count)
		}
	}

	// First occurrence wins: the clamped hour-30 entry and the first hour-9 entry.
	if samples[0] != (domain.StressSample{Hour: 23, Value: 5}) {
		t.Fatalf("expected first hour-23 sample to win, got %+v", samples[0])
	}
	if samples[1] != (domain.StressSample{Hour: 9, Value: 3}) {
		t.Fatalf("expected first hour-9 sample to win, got %+v", samples[1])
	}
}

func TestParseHourlySamplesMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "not json"},
		{"empty string", ""},
		{"wrong shape", `{"hours":[1,2,3]}`},
		{"samples not an array", `{"samples":"none"}`},
		{"empty samples array", `{"samples":[]}`},
		{"top-level array", `[{"hour":1,"value":2}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if samples := parseHourlySamples(tt.text); samples != nil {
				t.Fatalf("expected nil for %q, got %+v", tt.text, samples)
			}
		})
	}
}

func TestParseHourlySamplesTolerantOfCount(t *testing.T) {
	// The model should return 24 entries but the parser keeps whatever decodes
	text := `{"samples":[{"hour":9,"value":4}]}`
	samples := parseHourlySamples(text)
	if len(samples) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(samples))
	}
}

func TestParseForecastValid(t *testing.T) {
	forecast := parseForecast(`{"emoji":"😐","summary":"A mixed day."}`)
	if forecast == nil {
		t.Fatalf("expected forecast, got nil")
	}
	if forecast.Emoji != "😐" || forecast.Summary != "A mixed day." {
		t.Fatalf("unexpected forecast: %+v", forecast)
	}
}

func TestParseForecastMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "definitely not json"},
		{"missing emoji", `{"summary":"fine"}`},
		{"missing summary", `{"emoji":"😄"}`},
		{"blank fields", `{"emoji":" ","summary":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if forecast := parseForecast(tt.text); forecast != nil {
				t.Fatalf("expected nil for %q, got %+v", tt.text, forecast)
			}
		})
	}
}
