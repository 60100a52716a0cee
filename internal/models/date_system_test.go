package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateSystem_Decode(t *testing.T) {
	tests := []struct {
		name    string
		system  DateSystem
		serial  int
		want    time.Time
		wantErr bool
	}{
		{name: "epoch day zero", system: DateSystemEpoch1900, serial: 0, want: date(1900, time.January, 1)},
		{name: "epoch day one", system: DateSystemEpoch1900, serial: 1, want: date(1900, time.January, 2)},
		{name: "epoch crosses february", system: DateSystemEpoch1900, serial: 59, want: date(1900, time.March, 1)},
		{name: "epoch modern date", system: DateSystemEpoch1900, serial: 45292, want: date(2024, time.January, 3)},
		{name: "empty system defaults to epoch", system: "", serial: 31, want: date(1900, time.February, 1)},
		{name: "epoch negative", system: DateSystemEpoch1900, serial: -1, wantErr: true},
		{name: "excel day one", system: DateSystemExcel1900, serial: 1, want: date(1900, time.January, 1)},
		{name: "excel last real february day", system: DateSystemExcel1900, serial: 59, want: date(1900, time.February, 28)},
		{name: "excel phantom leap day", system: DateSystemExcel1900, serial: 60, wantErr: true},
		{name: "excel march first", system: DateSystemExcel1900, serial: 61, want: date(1900, time.March, 1)},
		{name: "excel modern date", system: DateSystemExcel1900, serial: 45292, want: date(2024, time.January, 1)},
		{name: "excel zero", system: DateSystemExcel1900, serial: 0, wantErr: true},
		{name: "epoch last representable day", system: DateSystemEpoch1900, serial: 2958463, want: date(9999, time.December, 31)},
		{name: "epoch past year 9999", system: DateSystemEpoch1900, serial: 2958464, wantErr: true},
		{name: "excel last representable day", system: DateSystemExcel1900, serial: 2958465, want: date(9999, time.December, 31)},
		{name: "excel past year 9999", system: DateSystemExcel1900, serial: 2958466, wantErr: true},
		{name: "far future serial", system: DateSystemEpoch1900, serial: 1_000_000_000, wantErr: true},
		{name: "unknown system", system: "julian", serial: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.system.Decode(tt.serial)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDateSystem_DecodeIsMonotonic(t *testing.T) {
	for _, system := range []DateSystem{DateSystemEpoch1900, DateSystemExcel1900} {
		prev, err := system.Decode(61)
		require.NoError(t, err)
		for serial := 62; serial < 62+800; serial++ {
			cur, err := system.Decode(serial)
			require.NoError(t, err)
			assert.Equal(t, prev.AddDate(0, 0, 1), cur, "serial %d in %s", serial, system)
			prev = cur
		}
	}
}

func TestDateSystem_InvalidSerialWrapsSentinel(t *testing.T) {
	_, err := DateSystemExcel1900.Decode(60)
	assert.ErrorIs(t, err, ErrInvalidSerialDate)
}

func TestParseDateSystem(t *testing.T) {
	ds, err := ParseDateSystem("excel1900")
	require.NoError(t, err)
	assert.Equal(t, DateSystemExcel1900, ds)

	_, err = ParseDateSystem("1904")
	assert.Error(t, err)
}

func TestMonthBucket(t *testing.T) {
	assert.Equal(t, "1900-01", MonthBucket(date(1900, time.January, 2)))
	assert.Equal(t, "2023-11", MonthBucket(date(2023, time.November, 30)))
	assert.Equal(t, "0999-03", MonthBucket(date(999, time.March, 1)))
}

func TestDateSystem_EncodeInvertsDecode(t *testing.T) {
	for _, system := range []DateSystem{DateSystemEpoch1900, DateSystemExcel1900} {
		for _, serial := range []int{1, 2, 59, 61, 62, 366, 45292} {
			day, err := system.Decode(serial)
			require.NoError(t, err)

			got, err := system.Encode(day.Add(15 * time.Hour))
			require.NoError(t, err)
			assert.Equal(t, serial, got, "%s %s", system, day.Format(DateLayout))
		}
	}
}

func TestDateSystem_EncodeRejectsEarlyDates(t *testing.T) {
	_, err := DateSystemEpoch1900.Encode(date(1899, time.December, 31))
	assert.ErrorIs(t, err, ErrInvalidSerialDate)

	_, err = DateSystemExcel1900.Encode(date(1899, time.December, 31))
	assert.ErrorIs(t, err, ErrInvalidSerialDate)
}
