/*
Package jalali converts dates between the proleptic Gregorian calendar and the
Solar Hijri (Persian, Jalali) calendar, answers leap-year and month-length
questions, and formats Persian dates for display.

Every function is pure and safe for concurrent use. The only shared data is
the break-point table behind IsLeapYear, which is never modified.

# Conversions

	p, err := jalali.ToPersian(jalali.GregorianDate{Year: 2024, Month: time.March, Day: 20})
	// p == jalali.PersianDate{Year: 1403, Month: jalali.Farvardin, Day: 1}

	g, err := jalali.ToGregorian(p)

Both directions validate their input and fail with ErrInvalidMonth,
ErrInvalidDay or ErrYearOutOfRange; use errors.Is to tell them apart.

# Supported range

IsLeapYear follows the historical break-point table, which covers Persian
years MinYear through MaxYear (Gregorian 560-03-20 to 3799-03-19). The
conversions count days from year starts derived from that same table, so a
year is 366 days long in a conversion exactly when IsLeapYear says so, and
both directions are exact inverses over the whole range. Dates outside it
fail with ErrYearOutOfRange.

# Formatting

	s, _ := jalali.Format(p, true)  // "چهارشنبه، 1 فروردین 1403"
	jalali.ToPersianDigits(s)       // "چهارشنبه، ۱ فروردین ۱۴۰۳"
*/
package jalali
