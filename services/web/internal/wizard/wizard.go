// Package wizard carries the booking flow state (car, duration, km package,
// start date) between pages as query parameters. Every page re-validates the
// parameters and the backend recomputes the price, so nothing in the URL is
// trusted.
package wizard

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/sarthakSixt/rental/pkg/api"
)

var (
	// Durations and KmPackages are the only offered plan axes; templates
	// render them and ParseSelection snaps anything else back to defaults.
	Durations  = []int{1, 3, 6}
	KmPackages = []int{500, 1000, 2000}
)

const (
	defaultDuration = 1
	defaultKm       = 1000
)

var (
	ErrNoCar        = errors.New("no car selected")
	ErrBadStartDate = errors.New("start date must be today or later")
)

// Selection is one fully-specified booking choice.
type Selection struct {
	CarID          int64
	CategoryID     int64
	DurationMonths int
	KmPackage      int
	StartDate      api.Date
}

// ParseSelection reads a selection from query parameters. Car and category
// are mandatory; duration and km fall back to defaults when absent or
// tampered with; the start date defaults to today and may not lie in the
// past. today is passed in so callers and tests agree on the clock.
func ParseSelection(q url.Values, today time.Time) (Selection, error) {
	carID, err := strconv.ParseInt(q.Get("carId"), 10, 64)
	if err != nil || carID <= 0 {
		return Selection{}, ErrNoCar
	}
	categoryID, err := strconv.ParseInt(q.Get("categoryId"), 10, 64)
	if err != nil || categoryID <= 0 {
		return Selection{}, ErrNoCar
	}

	sel := Selection{
		CarID:          carID,
		CategoryID:     categoryID,
		DurationMonths: pickAllowed(q.Get("durationMonths"), Durations, defaultDuration),
		KmPackage:      pickAllowed(q.Get("kmPackage"), KmPackages, defaultKm),
	}

	day := api.NewDate(today)
	if raw := q.Get("startDate"); raw != "" {
		d, err := api.ParseDate(raw)
		if err != nil {
			return Selection{}, ErrBadStartDate
		}
		if d.Time.Before(day.Time) {
			return Selection{}, ErrBadStartDate
		}
		sel.StartDate = d
	} else {
		sel.StartDate = day
	}
	return sel, nil
}

// Query renders the selection back into parameters for links between the
// configure and review pages.
func (s Selection) Query() url.Values {
	q := url.Values{}
	q.Set("carId", strconv.FormatInt(s.CarID, 10))
	q.Set("categoryId", strconv.FormatInt(s.CategoryID, 10))
	q.Set("durationMonths", strconv.Itoa(s.DurationMonths))
	q.Set("kmPackage", strconv.Itoa(s.KmPackage))
	q.Set("startDate", s.StartDate.String())
	return q
}

func pickAllowed(raw string, allowed []int, def int) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return def
}
