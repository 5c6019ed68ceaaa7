package jalali

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTime(t *testing.T) {
	tehran := time.FixedZone("IRST", 3*3600+1800)

	// The calendar day in the time's own location counts, not the UTC day.
	tests := []struct {
		name string
		in   time.Time
		want PersianDate
	}{
		{"late evening", time.Date(2024, time.March, 20, 23, 30, 0, 0, tehran), PersianDate{1403, Farvardin, 1}},
		{"early morning", time.Date(2024, time.March, 20, 1, 0, 0, 0, tehran), PersianDate{1403, Farvardin, 1}},
		{"same instant in UTC", time.Date(2024, time.March, 20, 1, 0, 0, 0, tehran).UTC(), PersianDate{1402, Esfand, 29}},
		{"Persian year one", time.Date(622, time.March, 22, 12, 0, 0, 0, time.UTC), PersianDate{1, Farvardin, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FromTime(time.Date(3799, time.March, 20, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrYearOutOfRange)
	_, err = FromTime(time.Time{})
	assert.ErrorIs(t, err, ErrYearOutOfRange)
}

func TestPersianDate_Time(t *testing.T) {
	got, err := PersianDate{1403, Farvardin, 1}.Time(nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), got)

	loc := time.FixedZone("IRST", 3*3600+1800)
	got, err = PersianDate{1403, Farvardin, 1}.Time(loc)
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 20, got.Day())

	_, err = PersianDate{1404, Esfand, 30}.Time(nil)
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestToday(t *testing.T) {
	before, err := FromTime(time.Now())
	require.NoError(t, err)
	today, err := Today()
	require.NoError(t, err)
	after, err := FromTime(time.Now())
	require.NoError(t, err)

	assert.True(t, today == before || today == after)
	assert.NoError(t, today.Validate())
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		from PersianDate
		n    int
		want PersianDate
	}{
		{"next day crosses the year", PersianDate{1402, Esfand, 29}, 1, PersianDate{1403, Farvardin, 1}},
		{"previous day crosses the year", PersianDate{1403, Farvardin, 1}, -1, PersianDate{1402, Esfand, 29}},
		{"next week", PersianDate{1403, Farvardin, 1}, 7, PersianDate{1403, Farvardin, 8}},
		{"leap day to Nowruz", PersianDate{1403, Esfand, 30}, 1, PersianDate{1404, Farvardin, 1}},
		{"month boundary", PersianDate{1403, Shahrivar, 31}, 1, PersianDate{1403, Mehr, 1}},
		{"zero", PersianDate{1403, Mehr, 15}, 0, PersianDate{1403, Mehr, 15}},
		{"one leap year", PersianDate{1403, Farvardin, 1}, 366, PersianDate{1404, Farvardin, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.from, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddDays_Errors(t *testing.T) {
	_, err := AddDays(PersianDate{1404, Esfand, 30}, 1)
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = AddDays(PersianDate{MaxYear, Farvardin, 1}, 400)
	assert.ErrorIs(t, err, ErrYearOutOfRange)

	_, err = AddDays(PersianDate{MinYear, Farvardin, 1}, -1)
	assert.ErrorIs(t, err, ErrYearOutOfRange)
}

func TestNewMonthGrid(t *testing.T) {
	grid, err := NewMonthGrid(1403, Farvardin)
	require.NoError(t, err)
	assert.Equal(t, Chaharshanbeh, grid.Offset)
	assert.Equal(t, 31, grid.Days)

	weeks := grid.Weeks()
	require.Len(t, weeks, 5)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 2, 3}, weeks[0])
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 10}, weeks[1])
	assert.Equal(t, []int{25, 26, 27, 28, 29, 30, 31}, weeks[4])

	p, err := grid.Date(13)
	require.NoError(t, err)
	assert.Equal(t, PersianDate{1403, Farvardin, 13}, p)

	_, err = grid.Date(32)
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestNewMonthGrid_OffsetMatchesWeekday(t *testing.T) {
	for month := Farvardin; month <= Esfand; month++ {
		grid, err := NewMonthGrid(1403, month)
		require.NoError(t, err)

		wd, err := WeekdayOf(PersianDate{1403, month, 1})
		require.NoError(t, err)
		assert.Equal(t, wd, grid.Offset, "month %d", month)

		cells := 0
		for _, week := range grid.Weeks() {
			require.Len(t, week, 7)
			for _, d := range week {
				if d != 0 {
					cells++
				}
			}
		}
		assert.Equal(t, grid.Days, cells)
	}
}

func TestNewMonthGrid_Invalid(t *testing.T) {
	_, err := NewMonthGrid(1403, 0)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = NewMonthGrid(MaxYear+1, Farvardin)
	assert.ErrorIs(t, err, ErrYearOutOfRange)
}
