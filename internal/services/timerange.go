package services

import (
	"fmt"
	"time"

	"github.com/thereayou/babbel/internal/models"
)

// Форматы, в которых принимаем start/end. ISO 8601 и пара снисходительных вариантов.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp разбирает строку времени из query-параметра.
// Всё, что не разобралось ни одним форматом — ErrBadRequest.
func ParseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q as a timestamp", ErrBadRequest, raw)
}

// ResolveRange превращает опциональные границы в конкретное окно [start, end]:
//
//	start + end  -> [start, end]
//	только start -> [start, now]
//	только end   -> [BeginningOfTime, end]  (исторический срез, watermark не при чём)
//	ничего       -> [lastFetch, now]        (дефолтный опрос "что нового")
func ResolveRange(start, end *time.Time, lastFetch, now time.Time) (time.Time, time.Time) {
	switch {
	case start != nil && end != nil:
		return *start, *end
	case start != nil:
		return *start, now
	case end != nil:
		return models.BeginningOfTime, *end
	default:
		return lastFetch, now
	}
}
