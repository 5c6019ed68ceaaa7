/*
Package icalendar carries Persian dates on iCalendar data built with
github.com/emersion/go-ical.

Components are annotated with an X-PERSIAN-DATE property holding the Persian
date of their DTSTART, and recurring components can be expanded into
occurrences that each know their Persian date:

	event, err := icalendar.NewAllDayEvent(jalali.PersianDate{Year: 1403, Month: jalali.Farvardin, Day: 1}, "Nowruz")
	cal := icalendar.NewCalendar(event)
	err = icalendar.Encode(os.Stdout, cal)

	exp := icalendar.NewExpander(icalendar.WithLogger(logger))
	occs, err := exp.Occurrences(event.Component, from, to)

RRULE cannot express "every 1 Farvardin", so YearlyOnPersianDate produces the
Gregorian dates of such an event and RepeatYearly writes them as an RDATE
list. Expanders shared across requests can memoize results with WithCache.
*/
package icalendar
