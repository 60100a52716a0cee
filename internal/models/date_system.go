package models

import (
	"fmt"
	"time"
)

// DateSystem decodes serial day counts into calendar dates
type DateSystem string

const (
	// DateSystemEpoch1900 counts days from 1900-01-01 (serial 0).
	DateSystemEpoch1900 DateSystem = "epoch1900"
	// DateSystemExcel1900 follows the spreadsheet 1900 date system: serial 1
	// is 1900-01-01 and serial 60 is the nonexistent 1900-02-29.
	DateSystemExcel1900 DateSystem = "excel1900"
)

const (
	MonthLayout = "2006-01"
	DateLayout  = "2006-01-02"

	excelPhantomLeapDay = 60
	// 9999-12-31 in the excel system; the epoch system reaches it at 2958463
	maxSerial = 2958465
)

var (
	epoch1900 = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	excelBase = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)
)

func ParseDateSystem(s string) (DateSystem, error) {
	switch ds := DateSystem(s); ds {
	case DateSystemEpoch1900, DateSystemExcel1900:
		return ds, nil
	}
	return "", fmt.Errorf("unknown date system %q", s)
}

// Decode converts a serial day count into a UTC calendar date. Dates after
// 9999-12-31 are rejected so month buckets stay four-digit YYYY-MM.
func (ds DateSystem) Decode(serial int) (time.Time, error) {
	if serial < 0 {
		return time.Time{}, fmt.Errorf("%w: %d is negative", ErrInvalidSerialDate, serial)
	}
	if serial > maxSerial {
		return time.Time{}, fmt.Errorf("%w: %d is after 9999-12-31", ErrInvalidSerialDate, serial)
	}

	t, err := ds.decode(serial)
	if err != nil {
		return time.Time{}, err
	}
	if t.Year() > 9999 {
		return time.Time{}, fmt.Errorf("%w: %d is after 9999-12-31", ErrInvalidSerialDate, serial)
	}
	return t, nil
}

func (ds DateSystem) decode(serial int) (time.Time, error) {
	switch ds {
	case DateSystemExcel1900:
		switch {
		case serial == 0:
			return time.Time{}, fmt.Errorf("%w: serial 0 has no calendar date", ErrInvalidSerialDate)
		case serial == excelPhantomLeapDay:
			return time.Time{}, fmt.Errorf("%w: serial 60 is 1900-02-29, which does not exist", ErrInvalidSerialDate)
		case serial > excelPhantomLeapDay:
			return excelBase.AddDate(0, 0, serial-1), nil
		default:
			return excelBase.AddDate(0, 0, serial), nil
		}
	case DateSystemEpoch1900, "":
		return epoch1900.AddDate(0, 0, serial), nil
	default:
		return time.Time{}, fmt.Errorf("unknown date system %q", ds)
	}
}

// Encode converts a calendar date into its serial day count. Dates before
// the first representable day of the date system are rejected.
func (ds DateSystem) Encode(t time.Time) (int, error) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	switch ds {
	case DateSystemExcel1900:
		serial := int(day.Sub(excelBase).Hours() / 24)
		if serial < 1 {
			return 0, fmt.Errorf("%w: %s is before 1900-01-01", ErrInvalidSerialDate, day.Format(DateLayout))
		}
		if serial >= excelPhantomLeapDay {
			serial++
		}
		return serial, nil
	case DateSystemEpoch1900, "":
		serial := int(day.Sub(epoch1900).Hours() / 24)
		if serial < 0 {
			return 0, fmt.Errorf("%w: %s is before 1900-01-01", ErrInvalidSerialDate, day.Format(DateLayout))
		}
		return serial, nil
	default:
		return 0, fmt.Errorf("unknown date system %q", ds)
	}
}

// MonthBucket formats a date as its YYYY-MM grouping key
func MonthBucket(t time.Time) string {
	return t.Format(MonthLayout)
}
