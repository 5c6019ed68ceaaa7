package jalali

import "fmt"

// breakPoints partitions Persian years into leap cycles. Each adjacent pair
// [jp, jm) is one interval; inside it leap years recur on a 33-year pattern
// measured from jp.
var breakPoints = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181,
	1210, 1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

const (
	// MinYear is the first Persian year covered by the break-point table.
	MinYear = -61
	// MaxYear is the last Persian year covered by the break-point table.
	MaxYear = 3177
)

// IsLeapYear reports whether the Persian year has 366 days.
func IsLeapYear(year int) (bool, error) {
	if err := checkYear(year); err != nil {
		return false, err
	}

	jp := breakPoints[0]
	jump := 0
	for _, jm := range breakPoints[1:] {
		jump = jm - jp
		if year < jm {
			break
		}
		jp = jm
	}

	n := year - jp
	// The last five years of an interval are shifted onto the next cycle.
	if jump-n < 6 {
		n = n - jump + (jump+4)/6*6
	}

	leap := (n + 1) % 33 % 4
	if jump == 33 && leap == 1 {
		leap = 0
	}
	return leap == 1, nil
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrYearOutOfRange, year, MinYear, MaxYear)
	}
	return nil
}
