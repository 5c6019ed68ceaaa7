package icalendar

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/cyp0633/libjalali/jalali"
	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
)

// Expander turns recurring components into Persian-dated occurrences.
type Expander struct {
	opts   ExpandOptions
	cache  *Cache
	logger *slog.Logger
}

// Option configures an Expander
type Option func(*Expander)

// WithLogger sets the logger for the expander
func WithLogger(logger *slog.Logger) Option {
	return func(e *Expander) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithOptions replaces DefaultExpandOptions
func WithOptions(opts ExpandOptions) Option {
	return func(e *Expander) {
		e.opts = opts
	}
}

// WithCache memoizes expansion results in cache
func WithCache(cache *Cache) Option {
	return func(e *Expander) {
		e.cache = cache
	}
}

// NewExpander creates an expander; it is safe for concurrent use.
func NewExpander(opts ...Option) *Expander {
	e := &Expander{
		opts:   DefaultExpandOptions,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Occurrences lists the instances of comp starting in [from, to), in
// chronological order. The master instance counts as an occurrence.
func (e *Expander) Occurrences(comp *ical.Component, from, to time.Time) ([]Occurrence, error) {
	if e.opts.MaxSpan > 0 && to.Sub(from) > e.opts.MaxSpan {
		e.logger.Debug("expansion range limited",
			"from", from, "to", to, "max_span", e.opts.MaxSpan)
		to = from.Add(e.opts.MaxSpan)
	}

	start, duration, err := spanOf(comp)
	if err != nil {
		return nil, err
	}
	info := RecurrenceInfoOf(comp)

	var key string
	if e.cache != nil {
		key = cacheKey(start, duration, info, from, to, e.opts)
		if occs, ok := e.cache.get(key); ok {
			e.logger.Debug("occurrence cache hit", "uid", uidOf(comp))
			return occs, nil
		}
	}

	starts := []time.Time{start}
	if info.RRULE != "" {
		expanded, err := expandRRule(start, info.RRULE, from, to)
		if err != nil {
			return nil, err
		}
		starts = append(starts, expanded...)
	}
	starts = append(starts, info.RDATE...)
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	var occs []Occurrence
	for i, s := range starts {
		if i > 0 && s.Equal(starts[i-1]) {
			continue
		}
		if s.Before(from) || !s.Before(to) || isExcluded(s, info.EXDATE) {
			continue
		}

		p, err := jalali.FromTime(s)
		if err != nil {
			e.logger.Warn("skipping occurrence without a Persian date",
				"uid", uidOf(comp), "start", s, "error", err)
			continue
		}

		occs = append(occs, Occurrence{Start: s, End: s.Add(duration), Persian: p})
		if e.opts.MaxOccurrences > 0 && len(occs) >= e.opts.MaxOccurrences {
			e.logger.Debug("occurrence limit reached",
				"uid", uidOf(comp), "limit", e.opts.MaxOccurrences)
			break
		}
	}

	e.logger.Debug("expanded component",
		"uid", uidOf(comp), "occurrences", len(occs))
	if e.cache != nil {
		e.cache.set(key, occs)
	}
	return occs, nil
}

// expandRRule expands an RRULE within [from, to]. Occurrences keep the wall
// clock and zone of start, so their calendar day is the event's local day.
func expandRRule(start time.Time, rule string, from, to time.Time) ([]time.Time, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RRULE '%s': %w", rule, err)
	}
	opt.Dtstart = start

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("failed to build RRULE '%s': %w", rule, err)
	}

	times := r.Between(from, to, true)
	for i, t := range times {
		times[i] = t.In(start.Location())
	}
	return times, nil
}

// isExcluded matches exact starts, and date-only exclusions against the
// occurrence's calendar day.
func isExcluded(t time.Time, exdates []time.Time) bool {
	for _, exdate := range exdates {
		if t.Equal(exdate) {
			return true
		}
		if exdate.Location() == time.UTC && exdate.Hour() == 0 && exdate.Minute() == 0 && exdate.Second() == 0 {
			y, m, d := t.Date()
			if time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Equal(exdate) {
				return true
			}
		}
	}
	return false
}

// YearlyOnPersianDate returns UTC midnight of month/day in each of count
// Persian years starting at fromYear. Years in which the day does not exist
// (Esfand 30 outside leap years) are skipped.
func YearlyOnPersianDate(month jalali.Month, day, fromYear, count int) ([]time.Time, error) {
	longest, err := jalali.DaysInMonth(jalali.MinYear, month)
	if err != nil {
		return nil, err
	}
	if month == jalali.Esfand {
		longest = 30
	}
	if day < 1 || day > longest {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", jalali.ErrInvalidDay, day, longest)
	}

	var dates []time.Time
	for year := fromYear; year < fromYear+count; year++ {
		t, err := jalali.PersianDate{Year: year, Month: month, Day: day}.Time(time.UTC)
		switch {
		case err == nil:
			dates = append(dates, t)
		case errors.Is(err, jalali.ErrInvalidDay):
			continue
		default:
			return nil, err
		}
	}
	return dates, nil
}
