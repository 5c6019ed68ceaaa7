package icalendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/cyp0633/libjalali/jalali"
	"github.com/emersion/go-ical"
	"github.com/samber/mo"
)

// PropPersianDate holds the Persian date of a component's DTSTART as YYYY/MM/DD.
const PropPersianDate = "X-PERSIAN-DATE"

var (
	// ErrNoStart is returned for components without a DTSTART.
	ErrNoStart = errors.New("component has no DTSTART")
	// ErrNoPersianDate is returned for components without an X-PERSIAN-DATE.
	ErrNoPersianDate = errors.New("component has no " + PropPersianDate)
)

// PersianDateOf computes the Persian date of the component's DTSTART.
// Date-only starts are read as UTC midnight; date-times use their own zone.
func PersianDateOf(comp *ical.Component) mo.Result[jalali.PersianDate] {
	start, err := startOf(comp)
	if err != nil {
		return mo.Err[jalali.PersianDate](err)
	}

	p, err := jalali.FromTime(start)
	if err != nil {
		return mo.Err[jalali.PersianDate](fmt.Errorf("DTSTART %s: %w", start.Format("2006-01-02"), err))
	}
	return mo.Ok(p)
}

// StoredPersianDate parses the component's X-PERSIAN-DATE property.
func StoredPersianDate(comp *ical.Component) mo.Result[jalali.PersianDate] {
	prop := comp.Props.Get(PropPersianDate)
	if prop == nil || prop.Value == "" {
		return mo.Err[jalali.PersianDate](ErrNoPersianDate)
	}
	return mo.TupleToResult(jalali.Parse(prop.Value))
}

// Annotate sets X-PERSIAN-DATE from DTSTART, replacing any stale value.
func Annotate(comp *ical.Component) error {
	p, err := PersianDateOf(comp).Get()
	if err != nil {
		return err
	}
	comp.Props.SetText(PropPersianDate, p.String())
	return nil
}

// AnnotateCalendar annotates every VEVENT and VTODO in cal and returns how
// many were annotated. Components that cannot be annotated are reported
// together in the returned error.
func AnnotateCalendar(cal *ical.Calendar) (int, error) {
	var (
		count int
		errs  []error
	)
	for _, child := range cal.Children {
		if child.Name != ical.CompEvent && child.Name != ical.CompToDo {
			continue
		}
		if err := Annotate(child); err != nil {
			errs = append(errs, fmt.Errorf("%s %q: %w", child.Name, uidOf(child), err))
			continue
		}
		count++
	}
	return count, errors.Join(errs...)
}

func startOf(comp *ical.Component) (t time.Time, err error) {
	if comp.Props.Get(ical.PropDateTimeStart) == nil {
		return time.Time{}, ErrNoStart
	}
	t, err = comp.Props.DateTime(ical.PropDateTimeStart, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse DTSTART: %w", err)
	}
	return t, nil
}

func uidOf(comp *ical.Component) string {
	if prop := comp.Props.Get(ical.PropUID); prop != nil {
		return prop.Value
	}
	return ""
}
