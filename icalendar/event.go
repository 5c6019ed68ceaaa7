package icalendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cyp0633/libjalali/jalali"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// ProductID identifies calendars produced by this package.
const ProductID = "-//cyp0633//libjalali//EN"

// NewAllDayEvent creates a VEVENT covering the given Persian day, with a
// random UID and an X-PERSIAN-DATE annotation.
func NewAllDayEvent(p jalali.PersianDate, summary string) (*ical.Event, error) {
	start, err := p.Time(time.UTC)
	if err != nil {
		return nil, err
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uuid.New().String())
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	event.Props.SetText(ical.PropSummary, summary)
	event.Props.SetDate(ical.PropDateTimeStart, start)
	event.Props.SetDate(ical.PropDateTimeEnd, start.AddDate(0, 0, 1))
	event.Props.SetText(PropPersianDate, p.String())
	return event, nil
}

// RepeatYearly adds an RDATE list repeating the event's X-PERSIAN-DATE on the
// same Persian month and day for the given number of following years.
func RepeatYearly(event *ical.Event, years int) error {
	if years <= 0 {
		return nil
	}
	p, err := StoredPersianDate(event.Component).Get()
	if err != nil {
		return err
	}
	dates, err := YearlyOnPersianDate(p.Month, p.Day, p.Year+1, years)
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		return nil
	}

	values := make([]string, len(dates))
	for i, t := range dates {
		values[i] = t.Format(dateFormat)
	}
	prop := ical.NewProp(ical.PropRecurrenceDates)
	prop.Params.Set(ical.ParamValue, string(ical.ValueDate))
	prop.Value = strings.Join(values, ",")
	event.Props.Set(prop)
	return nil
}

// NewCalendar wraps events in a VCALENDAR.
func NewCalendar(events ...*ical.Event) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	for _, event := range events {
		cal.Children = append(cal.Children, event.Component)
	}
	return cal
}

// Encode writes cal in iCalendar format.
func Encode(w io.Writer, cal *ical.Calendar) error {
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}
