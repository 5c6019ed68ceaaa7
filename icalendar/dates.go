package icalendar

import (
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

const (
	dateFormat        = "20060102"
	utcDateTimeFormat = "20060102T150405Z"
	localDateTime     = "20060102T150405"
)

// RecurrenceInfoOf extracts RRULE, RDATE and EXDATE from comp.
func RecurrenceInfoOf(comp *ical.Component) RecurrenceInfo {
	info := RecurrenceInfo{}

	if prop := comp.Props.Get(ical.PropRecurrenceRule); prop != nil && prop.Value != "" {
		info.RRULE = prop.Value
	}
	for _, prop := range comp.Props.Values(ical.PropRecurrenceDates) {
		info.RDATE = append(info.RDATE, parseDateList(prop.Value, prop.Params)...)
	}
	for _, prop := range comp.Props.Values(ical.PropExceptionDates) {
		info.EXDATE = append(info.EXDATE, parseDateList(prop.Value, prop.Params)...)
	}

	return info
}

// spanOf returns the start of comp and how long each occurrence lasts.
func spanOf(comp *ical.Component) (time.Time, time.Duration, error) {
	start, err := startOf(comp)
	if err != nil {
		return time.Time{}, 0, err
	}

	if comp.Props.Get(ical.PropDateTimeEnd) != nil {
		end, err := comp.Props.DateTime(ical.PropDateTimeEnd, time.UTC)
		if err == nil && end.After(start) {
			return start, end.Sub(start), nil
		}
	}
	if prop := comp.Props.Get(ical.PropDuration); prop != nil {
		if d, err := prop.Duration(); err == nil {
			return start, d, nil
		}
	}
	// An all-day event with no end lasts the whole day.
	if isDateValue(comp.Props.Get(ical.PropDateTimeStart).Params) {
		return start, 24 * time.Hour, nil
	}
	return start, 0, nil
}

// parseDateList parses a comma-separated RDATE/EXDATE value. Date-only
// entries become UTC midnight; unparsable entries are dropped.
func parseDateList(value string, params ical.Params) []time.Time {
	if value == "" {
		return nil
	}

	loc := time.UTC
	if tzid := params.Get(ical.ParamTimezoneID); tzid != "" {
		if l, err := time.LoadLocation(tzid); err == nil {
			loc = l
		}
	}

	var dates []time.Time
	for _, s := range strings.Split(value, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if t, ok := parseDateValue(s, loc, isDateValue(params)); ok {
			dates = append(dates, t)
		}
	}
	return dates
}

func parseDateValue(s string, loc *time.Location, dateOnly bool) (time.Time, bool) {
	if !dateOnly {
		if t, err := time.Parse(utcDateTimeFormat, s); err == nil {
			return t, true
		}
		if t, err := time.ParseInLocation(localDateTime, s, loc); err == nil {
			return t, true
		}
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func isDateValue(params ical.Params) bool {
	return strings.EqualFold(params.Get(ical.ParamValue), string(ical.ValueDate))
}
