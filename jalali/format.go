package jalali

import (
	"fmt"
	"strconv"
	"strings"
)

var monthNames = [12]string{
	"فروردین",
	"اردیبهشت",
	"خرداد",
	"تیر",
	"مرداد",
	"شهریور",
	"مهر",
	"آبان",
	"آذر",
	"دی",
	"بهمن",
	"اسفند",
}

var weekdayNames = [7]string{"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه"}

// MonthName returns the Persian name of month, if it is one.
func MonthName(m Month) (string, bool) {
	if m < Farvardin || m > Esfand {
		return "", false
	}
	return monthNames[m-1], true
}

// WeekdayName returns the Persian name of d, if it is one.
func WeekdayName(d Weekday) (string, bool) {
	if d < Shanbeh || d > Jomeh {
		return "", false
	}
	return weekdayNames[d], true
}

// Format renders p as "<day> <month name> <year>", prefixed with the weekday
// name and an Arabic comma when includeWeekday is set. Digits stay ASCII;
// pass the result through ToPersianDigits for Persian numerals.
func Format(p PersianDate, includeWeekday bool) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	s := fmt.Sprintf("%d %s %d", p.Day, monthNames[p.Month-1], p.Year)
	if !includeWeekday {
		return s, nil
	}

	g := toGregorian(p.Year, p.Month, p.Day)
	return weekdayNames[weekdayOfGregorian(g)] + "، " + s, nil
}

var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// ToPersianDigits replaces every ASCII digit in s with its Persian numeral.
// Everything else is left untouched.
func ToPersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return persianDigits[r-'0']
		}
		return r
	}, s)
}

// FromPersianDigits is the inverse of ToPersianDigits. Arabic-Indic digits
// (U+0660..U+0669), which Persian keyboards sometimes produce, are folded too.
func FromPersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		}
		return r
	}, s)
}

// FormatNumber renders n with Persian numerals.
func FormatNumber(n int) string {
	return ToPersianDigits(strconv.Itoa(n))
}
