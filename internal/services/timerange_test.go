package services

import (
	"errors"
	"testing"
	"time"

	"github.com/thereayou/babbel/internal/models"
)

func TestResolveRange(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	lastFetch := time.Date(2024, 2, 28, 9, 30, 0, 0, time.UTC)
	start := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		start, end *time.Time
		wantFrom   time.Time
		wantTo     time.Time
	}{
		{"both bounds", &start, &end, start, end},
		{"start only", &start, nil, start, now},
		{"end only bypasses watermark", nil, &end, models.BeginningOfTime, end},
		{"no bounds polls since last fetch", nil, nil, lastFetch, now},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to := ResolveRange(tc.start, tc.end, lastFetch, now)
			if !from.Equal(tc.wantFrom) || !to.Equal(tc.wantTo) {
				t.Errorf("ResolveRange = [%v, %v], want [%v, %v]", from, to, tc.wantFrom, tc.wantTo)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	valid := []string{
		"2016-10-08T10:23:29.000000+00:00",
		"2016-10-08T10:23:50.828699+02:00",
		"2016-10-08T10:23:29Z",
		"2016-10-08T10:23:29",
		"2016-10-08 10:23:29",
		"2016-10-08",
	}
	for _, raw := range valid {
		if _, err := ParseTimestamp(raw); err != nil {
			t.Errorf("ParseTimestamp(%q) returned error: %v", raw, err)
		}
	}

	invalid := []string{
		"",
		"not a date",
		"10:23:29",
		"2016-13-40",
		"99999999999-01-01",
	}
	for _, raw := range invalid {
		if _, err := ParseTimestamp(raw); !errors.Is(err, ErrBadRequest) {
			t.Errorf("ParseTimestamp(%q) error = %v, want ErrBadRequest", raw, err)
		}
	}
}

func TestParseTimestampNormalizesToUTC(t *testing.T) {
	got, err := ParseTimestamp("2016-10-08T12:23:29+02:00")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2016, 10, 8, 10, 23, 29, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("ParseTimestamp = %v, want %v in UTC", got, want)
	}
}
