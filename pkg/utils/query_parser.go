package utils

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "hr-system/pkg/errors"
	"hr-system/pkg/types"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DateLayout   = "2006-01-02"

	// MaxPage не даёт смещению (page-1)*limit переполнить int.
	MaxPage = math.MaxInt / MaxLimit
)

// ParsePageFilter читает page, limit и getAll из query-строки.
// Некорректные значения заменяются значениями по умолчанию.
func ParsePageFilter(values url.Values) types.PageFilter {
	filter := types.PageFilter{Page: 1, Limit: DefaultLimit}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				filter.Limit = MaxLimit
			} else {
				filter.Limit = l
			}
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filter.Page = min(p, MaxPage)
		}
	}

	filter.Offset = (filter.Page - 1) * filter.Limit
	filter.GetAll = ParseBool(values.Get("getAll"))

	return filter
}

// ParseBool понимает "true"/"1"; всё остальное считается false.
func ParseBool(raw string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && b
}

// ParseDate разбирает дату вида YYYY-MM-DD в UTC. Пустая строка даёт nil.
func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}
	return &t, nil
}

func ParseDateRange(values url.Values) (types.DateRange, error) {
	var rng types.DateRange
	start, err := ParseDate(values.Get("startDate"))
	if err != nil {
		return rng, err
	}
	end, err := ParseDate(values.Get("endDate"))
	if err != nil {
		return rng, err
	}
	if start != nil && end != nil && start.After(*end) {
		return rng, apperrors.ErrInvalidPeriod
	}
	rng.StartDate, rng.EndDate = start, end
	return rng, nil
}
