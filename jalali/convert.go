package jalali

import (
	"fmt"
	"sort"
	"time"
)

const (
	secondsPerDay = 24 * 60 * 60
	firstHalfDays = 186 // Farvardin..Shahrivar

	// Persian 1403/01/01 fell on Gregorian 2024-03-20. Every other year
	// start is counted from it with IsLeapYear.
	anchorYear = 1403
)

// nowruzDays[i] is the day number of 1 Farvardin of year MinYear+i. The last
// entry is the start of MaxYear+1 and closes the table. Built once, never
// written afterwards.
var nowruzDays = buildNowruzDays()

func buildNowruzDays() [MaxYear - MinYear + 2]int {
	var days [MaxYear - MinYear + 2]int

	days[anchorYear-MinYear] = dayNumber(2024, time.March, 20)
	for year := anchorYear; year <= MaxYear; year++ {
		days[year-MinYear+1] = days[year-MinYear] + yearLength(year)
	}
	for year := anchorYear - 1; year >= MinYear; year-- {
		days[year-MinYear] = days[year-MinYear+1] - yearLength(year)
	}
	return days
}

func yearLength(year int) int {
	if leap, _ := IsLeapYear(year); leap {
		return 366
	}
	return 365
}

// ToPersian converts a Gregorian date. Dates whose Persian year falls
// outside [MinYear, MaxYear] fail with ErrYearOutOfRange.
func ToPersian(g GregorianDate) (PersianDate, error) {
	if err := g.Validate(); err != nil {
		return PersianDate{}, err
	}
	return toPersian(g.Year, g.Month, g.Day)
}

// ToGregorian converts a Persian date after validating it against the
// break-point table.
func ToGregorian(p PersianDate) (GregorianDate, error) {
	if err := p.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return toGregorian(p.Year, p.Month, p.Day), nil
}

func toPersian(gy int, gm time.Month, gd int) (PersianDate, error) {
	n := dayNumber(gy, gm, gd)
	if n < nowruzDays[0] || n >= nowruzDays[len(nowruzDays)-1] {
		return PersianDate{}, fmt.Errorf("%w: %04d-%02d-%02d is outside Persian years [%d, %d]",
			ErrYearOutOfRange, gy, int(gm), gd, MinYear, MaxYear)
	}

	i := sort.Search(len(nowruzDays), func(i int) bool { return nowruzDays[i] > n }) - 1
	year, days := MinYear+i, n-nowruzDays[i]

	if days < firstHalfDays {
		return PersianDate{Year: year, Month: Month(1 + days/31), Day: 1 + days%31}, nil
	}
	days -= firstHalfDays
	return PersianDate{Year: year, Month: Month(7 + days/30), Day: 1 + days%30}, nil
}

// toGregorian expects a valid p.
func toGregorian(jy int, jm Month, jd int) GregorianDate {
	days := int(jm-1)*31 + jd - 1
	if jm >= Mehr {
		days = firstHalfDays + int(jm-Mehr)*30 + jd - 1
	}

	y, m, d := time.Unix(int64(nowruzDays[jy-MinYear]+days)*secondsPerDay, 0).UTC().Date()
	return GregorianDate{Year: y, Month: m, Day: d}
}

// dayNumber counts days since 1970-01-01 in the proleptic Gregorian calendar.
func dayNumber(y int, m time.Month, d int) int {
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}
