package icalendar

import (
	"time"

	"github.com/cyp0633/libjalali/jalali"
)

// RecurrenceInfo contains the recurrence-related properties of a component
type RecurrenceInfo struct {
	RRULE  string      // without the "RRULE:" prefix
	RDATE  []time.Time // additional occurrence starts
	EXDATE []time.Time // excluded occurrence starts
}

// Occurrence is a single instance of a component together with its Persian date
type Occurrence struct {
	Start   time.Time
	End     time.Time
	Persian jalali.PersianDate
}

// ExpandOptions bounds recurrence expansion
type ExpandOptions struct {
	MaxOccurrences int           // 0 means unlimited
	MaxSpan        time.Duration // longest range expanded in one call, 0 means unlimited
}

// DefaultExpandOptions keeps a year view's worth of daily events
var DefaultExpandOptions = ExpandOptions{
	MaxOccurrences: 1000,
	MaxSpan:        2 * 366 * 24 * time.Hour,
}
